package repository

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wolfterm/wolfterm-backend/database"
)

// fakeCollection is an in-memory database.Collection. Documents are
// normalized through a bson round trip so they decode exactly as the
// driver would decode them. Filters support flat string equality, which
// is all the repositories use; operator filters match everything and are
// asserted via lastFilter instead.
type fakeCollection struct {
	docs []bson.M

	failAll bool
	err     error

	findCalls  int
	lastFilter any
	lastOpts   database.FindOptions
}

func (f *fakeCollection) storeErr() error {
	if f.err != nil {
		return f.err
	}
	return errStoreDown
}

var errStoreDown = &connError{}

type connError struct{}

func (*connError) Error() string { return "connection refused" }

func normalize(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc bson.M, filter any) bool {
	f, ok := filter.(bson.M)
	if !ok || len(f) == 0 {
		return true
	}
	for key, want := range f {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if s, ok := want.(string); ok && doc[key] != s {
			return false
		}
	}
	return true
}

func decodeAll(docs []bson.M, results any) error {
	rv := reflect.ValueOf(results).Elem()
	out := reflect.MakeSlice(rv.Type(), 0, len(docs))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(rv.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	rv.Set(out)
	return nil
}

func (f *fakeCollection) Find(ctx context.Context, filter any, opts database.FindOptions, results any) error {
	f.findCalls++
	f.lastFilter = filter
	f.lastOpts = opts
	if f.failAll {
		return f.storeErr()
	}
	matched := []bson.M{}
	for _, doc := range f.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return decodeAll(matched, results)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter any, result any) error {
	if f.failAll {
		return f.storeErr()
	}
	for _, doc := range f.docs {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, result)
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCollection) InsertOne(ctx context.Context, doc any) error {
	if f.failAll {
		return f.storeErr()
	}
	m, err := normalize(doc)
	if err != nil {
		return err
	}
	f.docs = append(f.docs, m)
	return nil
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter any, update any) (int64, error) {
	if f.failAll {
		return 0, f.storeErr()
	}
	set := bson.M{}
	if u, ok := update.(bson.M); ok {
		switch s := u["$set"].(type) {
		case bson.M:
			set = s
		case map[string]any:
			set = s
		}
	}
	var matched int64
	for _, doc := range f.docs {
		if matches(doc, filter) {
			matched++
			for k, v := range set {
				nv, err := normalizeValue(v)
				if err != nil {
					return 0, err
				}
				doc[k] = nv
			}
		}
	}
	return matched, nil
}

// normalizeValue runs a single value through the same bson round trip as
// inserted documents so updated fields decode consistently.
func normalizeValue(v any) (any, error) {
	m, err := normalize(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	return m["v"], nil
}

func (f *fakeCollection) ReplaceOne(ctx context.Context, filter any, doc any) (int64, error) {
	if f.failAll {
		return 0, f.storeErr()
	}
	for i := range f.docs {
		if matches(f.docs[i], filter) {
			m, err := normalize(doc)
			if err != nil {
				return 0, err
			}
			f.docs[i] = m
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCollection) UpsertOne(ctx context.Context, filter any, doc any) error {
	if f.failAll {
		return f.storeErr()
	}
	matched, err := f.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return err
	}
	if matched == 0 {
		return f.InsertOne(ctx, doc)
	}
	return nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	if f.failAll {
		return 0, f.storeErr()
	}
	for i := range f.docs {
		if matches(f.docs[i], filter) {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCollection) Count(ctx context.Context, filter any) (int64, error) {
	if f.failAll {
		return 0, f.storeErr()
	}
	var n int64
	for _, doc := range f.docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func mustInsert(f *fakeCollection, docs ...any) {
	for _, doc := range docs {
		if err := f.InsertOne(context.Background(), doc); err != nil {
			panic(err)
		}
	}
}
