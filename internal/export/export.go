// Package export writes user batches as a MongoDB extended JSON array that
// mongoimport --jsonArray can load directly.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/user"
	"go.mongodb.org/mongo-driver/bson"
)

const indent = "  "

// ErrNotArray is returned by Read when the file is not a JSON array.
var ErrNotArray = errors.New("export: file is not a json array")

// Marshal encodes users as a pretty-printed JSON array of relaxed extended
// JSON documents. Ids become {"$oid": ...}, timestamps {"$date": ...} and a
// missing last login stays an explicit null. Non-ASCII text is not escaped.
func Marshal(users []user.User) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, u := range users {
		if i > 0 {
			buf.WriteByte(',')
		}
		doc, err := bson.MarshalExtJSON(u, false, false)
		if err != nil {
			return nil, fmt.Errorf("marshal user %d: %w", i, err)
		}
		buf.Write(doc)
	}
	buf.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	return out.Bytes(), nil
}

// MarshalOne encodes a single user the same way Marshal encodes each element.
func MarshalOne(u user.User) ([]byte, error) {
	doc, err := bson.MarshalExtJSON(u, false, false)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	return out.Bytes(), nil
}

// Write encodes the whole batch and writes it to path in a single call, so a
// failed encode leaves nothing on disk.
func Write(fsys zfilesystem.ReadWriteFileFS, path string, users []user.User) error {
	data, err := Marshal(users)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export %s: write: %w", path, err)
	}
	return nil
}

// Read parses a file produced by Write back into users.
func Read(fsys zfilesystem.ReadWriteFileFS, path string) ([]user.User, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: read: %w", path, err)
	}
	return Unmarshal(data)
}

// Unmarshal decodes an extended JSON array into users.
func Unmarshal(data []byte) ([]user.User, error) {
	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("parse array: %w", err)
	}

	users := make([]user.User, 0, len(docs))
	for i, doc := range docs {
		var u user.User
		if err := bson.UnmarshalExtJSON(doc, false, &u); err != nil {
			return nil, fmt.Errorf("parse user %d: %w", i, err)
		}
		users = append(users, u)
	}
	return users, nil
}
