// FilePath: internal/localstore/localstore.go
package localstore

import (
	"context"
	"encoding/json"

	"github.com/honeyroute/honeyroute/internal/kvstore"
	nuts "github.com/vaudience/go-nuts"
)

// Persistent keys. These match the keys the client wrote to its
// origin-scoped storage, so a migrated device keeps its data.
const (
	KeyActiveApiary   = "hr.apiary"
	KeyApiaries       = "hr.apiaries"
	KeyHives          = "hr.hives"
	KeyLocale         = "hr.locale"
	KeyDemoSeeded     = "hr.demoSeeded"
	KeyMapHighlight   = "map.highlight"
	KeyResolvedAlerts = "resolvedAlerts"
)

// Adapter is the single boundary where persisted values are parsed and
// validated. Reads never fail on malformed data: an unparseable value,
// a non-array collection or an invalid element degrades to empty/skip,
// so one bad record can never take a whole read down. Appends preserve
// the raw element list as stored, including records that fail read
// validation; validation filters views, it never rewrites data. There
// is no locking across the read-append-write sequence; two concurrent
// writers can race and one addition can be lost. That is a known
// limitation carried over from the original storage model.
type Adapter struct {
	store kvstore.Store
}

// New creates an Adapter over the given store.
func New(store kvstore.Store) *Adapter {
	return &Adapter{store: store}
}

// readRawElements fetches a JSON array value as undecoded elements.
// Absent, unparseable or non-array values all yield nil.
func (a *Adapter) readRawElements(ctx context.Context, key string) []json.RawMessage {
	raw, ok, err := a.store.Get(ctx, key)
	if err != nil {
		nuts.L.Warnf("[LocalStore] read of %s failed: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		nuts.L.Warnf("[LocalStore] %s holds malformed data, treating as empty", key)
		return nil
	}
	return elems
}

// readRawArray decodes the array's elements into loose objects.
// Elements that are not JSON objects are dropped individually; a mixed
// array never aborts the read.
func (a *Adapter) readRawArray(ctx context.Context, key string) []map[string]any {
	elems := a.readRawElements(ctx, key)
	out := make([]map[string]any, 0, len(elems))
	for _, e := range elems {
		var m map[string]any
		if err := json.Unmarshal(e, &m); err != nil || m == nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// writeJSON persists v under key as JSON.
func (a *Adapter) writeJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, key, string(raw))
}

// appendJSON appends v to the stored array under key, keeping every
// existing element byte-for-byte as it was written.
func (a *Adapter) appendJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	elems := append(a.readRawElements(ctx, key), json.RawMessage(raw))
	return a.writeJSON(ctx, key, elems)
}

// Field extraction helpers. Wrong-typed optionals become their zero
// value (or nil), never a guessed value.

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func floatField(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}
