package vo

import (
	"bytes"
	"encoding/json"
)

// ResultSet maps element names to their records and remembers insertion order,
// which is the key order of the marshalled json object.
type ResultSet struct {
	names   []ElementName
	records map[ElementName]ElementRecord
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		records: map[ElementName]ElementRecord{},
	}
}

// Add stores the record under its name. A name that is already present keeps
// its position and gets the new record.
func (rs *ResultSet) Add(record ElementRecord) {
	name := ElementName(record.Name)
	if _, ok := rs.records[name]; !ok {
		rs.names = append(rs.names, name)
	}
	rs.records[name] = record
}

func (rs *ResultSet) Get(name ElementName) (record ElementRecord, ok bool) {
	record, ok = rs.records[name]
	return
}

func (rs *ResultSet) Len() int {
	return len(rs.names)
}

func (rs *ResultSet) Names() []ElementName {
	names := make([]ElementName, len(rs.names))
	copy(names, rs.names)
	return names
}

func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, name := range rs.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		errKey := encodeUnescaped(buf, string(name))
		if errKey != nil {
			return nil, errKey
		}
		buf.WriteByte(':')
		errRecord := encodeUnescaped(buf, rs.records[name])
		if errRecord != nil {
			return nil, errRecord
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeUnescaped leaves <, > and & alone, example snippets are markup
func encodeUnescaped(buf *bytes.Buffer, v interface{}) error {
	valueBuf := &bytes.Buffer{}
	enc := json.NewEncoder(valueBuf)
	enc.SetEscapeHTML(false)
	if errEncode := enc.Encode(v); errEncode != nil {
		return errEncode
	}
	buf.Write(bytes.TrimSuffix(valueBuf.Bytes(), []byte("\n")))
	return nil
}
