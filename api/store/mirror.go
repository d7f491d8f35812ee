/* mirror.go
 * Contains the best-effort remote mirror. Every local write wakes the mirror;
 * a background goroutine coalesces wakeups and upserts a full snapshot of the
 * key-value medium into a MongoDB collection, at most once per debounce
 * window. A failed or slow upsert is logged and dropped; it must never block
 * or roll back a local state transition.
 */

package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"
)

type Mirror struct {
	client     *mongo.Client
	collection *mongo.Collection
	kv         KV
	name       string

	limiter *rate.Limiter
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// NewMirror connects to the remote backend and starts the flush goroutine.
// Preconditions: receives the mongo URI, database and collection names, the
// snapshot document id, the medium to snapshot and the minimum interval
// between remote writes
// Postconditions: returns a running Mirror, or an error if the initial
// connection could not be established
func NewMirror(mongoURI, dbName, collName, name string, kv KV, minInterval time.Duration) (*Mirror, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}

	m := &Mirror{
		client:     client,
		collection: client.Database(dbName).Collection(collName),
		kv:         kv,
		name:       name,
		limiter:    rate.NewLimiter(rate.Every(minInterval), 1),
		wake:       make(chan struct{}, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	go m.run()
	return m, nil
}

// Notify marks the snapshot dirty. Never blocks; consecutive notifications
// before the next flush coalesce into one remote write (latest wins).
func (m *Mirror) Notify() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Mirror) run() {
	defer close(m.stopped)
	for {
		select {
		case <-m.done:
			return
		case <-m.wake:
			if err := m.limiter.Wait(context.Background()); err != nil {
				return
			}
			m.flush(context.Background())
		}
	}
}

// flush upserts the current snapshot. Errors are swallowed after logging;
// the mirror is best-effort by contract.
func (m *Mirror) flush(ctx context.Context) {
	snapshot := m.kv.Snapshot()
	data := make(bson.M, len(snapshot))
	for key, raw := range snapshot {
		data[key] = string(raw)
	}

	filter := bson.M{"_id": m.name}
	update := bson.M{"$set": bson.M{
		"data":      data,
		"updatedAt": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		log.Printf("mirror: snapshot upsert failed: %v", err)
	}
}

// Close stops the flush goroutine, attempts one final snapshot write and
// disconnects. Safe to call once.
func (m *Mirror) Close(ctx context.Context) error {
	close(m.done)
	<-m.stopped
	m.flush(ctx)
	return m.client.Disconnect(ctx)
}
