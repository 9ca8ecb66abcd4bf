package datastore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"

	"github.com/gitjits/geodata/internal/domain"
)

var tracer = otel.Tracer("datastore")

const (
	mongoIDField  = "_id"
	legacyIDField = "id"

	connectTimeout = 5 * time.Second
)

// Store is the single choke point for document persistence. It connects
// lazily on first use; Close releases the client and resets the store to
// not-connected so a later call reconnects. Close must not race with
// in-flight operations.
type Store struct {
	uri      string
	database string

	mu     sync.Mutex
	client *mongo.Client
}

// New creates a Store for the given connection URI and database name.
// No connection is attempted until the first operation.
func New(uri, database string) *Store {
	return &Store{uri: uri, database: database}
}

func (s *Store) conn(ctx context.Context) (*mongo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	slog.Info("connecting to document store",
		slog.String("module", "datastore"),
	)
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(cctx, options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return nil, domain.ConnectionError{Cause: err}
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, domain.ConnectionError{Cause: err}
	}
	s.client = client
	return s.client, nil
}

// Close releases the connection handle. The next operation reconnects.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

func (s *Store) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(s.database).Collection(name), nil
}

// ReadOption adjusts how read operations render documents.
type ReadOption func(*readConfig)

type readConfig struct {
	keepID bool
}

// WithID keeps the storage-internal identifier on returned documents,
// rendered as a hex string.
func WithID() ReadOption {
	return func(c *readConfig) {
		c.keepID = true
	}
}

// Create inserts a single document and returns the storage-assigned id.
// No business uniqueness is enforced here; that is the caller's job,
// backed by the unique indexes from EnsureIndexes.
func (s *Store) Create(ctx context.Context, collection string, doc domain.Document) (string, error) {
	ctx, span := tracer.Start(ctx, "Store.Create")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	res, err := coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrapf(err, "insert into %s failed", collection)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", errors.Errorf("insert into %s returned unexpected id type", collection)
}

// ReadOne returns the first document matching filter, or nil when
// nothing matches. The internal id is stripped unless WithID is given.
func (s *Store) ReadOne(ctx context.Context, collection string, filter domain.Document, opts ...ReadOption) (domain.Document, error) {
	ctx, span := tracer.Start(ctx, "Store.ReadOne")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	var raw bson.M
	err = coll.FindOne(ctx, bson.M(filter)).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "read from %s failed", collection)
	}
	return normalizeDoc(raw, readOptions(opts)), nil
}

// ReadMany returns all documents matching filter.
func (s *Store) ReadMany(ctx context.Context, collection string, filter domain.Document, opts ...ReadOption) ([]domain.Document, error) {
	ctx, span := tracer.Start(ctx, "Store.ReadMany")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M(filter))
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "read from %s failed", collection)
	}
	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "read from %s failed", collection)
	}
	cfg := readOptions(opts)
	docs := make([]domain.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, normalizeDoc(raw, cfg))
	}
	return docs, nil
}

// ReadAll returns every document in the collection.
func (s *Store) ReadAll(ctx context.Context, collection string, opts ...ReadOption) ([]domain.Document, error) {
	return s.ReadMany(ctx, collection, domain.Document{}, opts...)
}

// Update applies patch as a merge to the first document matching filter
// and reports how many documents matched, distinguishing "no such
// record" from "matched but nothing changed".
func (s *Store) Update(ctx context.Context, collection string, filter, patch domain.Document) (int64, error) {
	ctx, span := tracer.Start(ctx, "Store.Update")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	res, err := coll.UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(patch)})
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrapf(err, "update in %s failed", collection)
	}
	return res.MatchedCount, nil
}

// Delete removes the first document matching filter and returns the
// removed count.
func (s *Store) Delete(ctx context.Context, collection string, filter domain.Document) (int64, error) {
	ctx, span := tracer.Start(ctx, "Store.Delete")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	res, err := coll.DeleteOne(ctx, bson.M(filter))
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrapf(err, "delete from %s failed", collection)
	}
	return res.DeletedCount, nil
}

// Exists reports whether any document matches filter. Cheaper than
// ReadOne when only existence matters.
func (s *Store) Exists(ctx context.Context, collection string, filter domain.Document) (bool, error) {
	ctx, span := tracer.Start(ctx, "Store.Exists")
	defer span.End()

	coll, err := s.collection(ctx, collection)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	n, err := coll.CountDocuments(ctx, bson.M(filter), options.Count().SetLimit(1))
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrapf(err, "count in %s failed", collection)
	}
	return n > 0, nil
}

// EnsureIndexes declares the uniqueness constraints and lookup indexes
// for all collections. The application-level existence pre-checks give
// friendly errors; these unique indexes are the actual correctness
// guarantee for the non-atomic check-then-insert sequence. Safe to
// re-run.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	client, err := s.conn(ctx)
	if err != nil {
		return err
	}
	db := client.Database(s.database)

	asc := func(keys ...string) bson.D {
		d := bson.D{}
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: 1})
		}
		return d
	}

	_, err = db.Collection(domain.CountryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    asc(domain.FieldCode),
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "countries index failed")
	}

	_, err = db.Collection(domain.StateCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    asc(domain.FieldStateCode, domain.FieldCountryCode),
			Options: options.Index().SetUnique(true),
		},
		{Keys: asc(domain.FieldCountryCode)},
	})
	if err != nil {
		return errors.Wrap(err, "states indexes failed")
	}

	_, err = db.Collection(domain.CityCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: asc(domain.FieldStateCode),
	})
	if err != nil {
		return errors.Wrap(err, "cities index failed")
	}

	_, err = db.Collection(domain.ParkCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    asc(domain.FieldParkCode),
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "parks index failed")
	}

	slog.Info("datastore indexes created/verified",
		slog.String("module", "datastore"),
	)
	return nil
}

// IsDuplicateKey reports whether err is the store's unique-constraint
// violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(errors.Cause(err))
}

func readOptions(opts []ReadOption) readConfig {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// normalizeDoc strips the storage-internal identifier, plus a legacy
// duplicate id field left behind by earlier loaders, so documents stay
// homogeneous for callers that don't special-case surrogate keys. With
// keepID the internal id is rewritten as a hex string instead.
func normalizeDoc(raw bson.M, cfg readConfig) domain.Document {
	doc := domain.Document(raw)
	if !cfg.keepID {
		delete(doc, mongoIDField)
		delete(doc, legacyIDField)
		return doc
	}
	if oid, ok := doc[mongoIDField].(primitive.ObjectID); ok {
		hex := oid.Hex()
		doc[mongoIDField] = hex
		if legacy, ok := doc[legacyIDField].(string); ok && legacy == hex {
			delete(doc, legacyIDField)
		}
	}
	return doc
}
