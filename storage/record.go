package storage

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// RecordKey is the key the best score is stored under
const RecordKey = "snake-record"

// RecordStore reads and writes the best score as a decimal string
type RecordStore struct {
	store Store
	key   string
}

func NewRecordStore(store Store) *RecordStore {
	return &RecordStore{store: store, key: RecordKey}
}

// GetRecord returns the stored record, or 0 when it is absent or unreadable
func (rs *RecordStore) GetRecord() int {
	v, ok, err := rs.store.Get(rs.key)
	if err != nil {
		glog.Warningf("record: read %q: %v", rs.key, err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		glog.Warningf("record: ignoring stored value %q", v)
		return 0
	}
	return n
}

func (rs *RecordStore) SetRecord(record int) error {
	if err := rs.store.Set(rs.key, strconv.Itoa(record)); err != nil {
		return errors.Wrap(err, "save record")
	}
	return nil
}
