/* models.go
 * This file contains the structs that are shared between sub packages: the
 * acting admin session and the roster user record
 */

package shared

// Session describes the caller of an admin operation. It is the only fact the
// core consumes about authentication: who is acting and whether they are an
// admin. How the session was established is the calling surface's problem.
type Session struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// User is one entry of the registered-user roster. The roster itself is owned
// by an external flow; the core only reads it to snapshot eligible usernames
// at contest start and to render admin reports.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
