package export

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/user"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func testUsers() []user.User {
	oid, _ := primitive.ObjectIDFromHex("65f1c0ffee0123456789abcd")
	login := time.Date(2025, 2, 3, 4, 5, 6, 789_000_000, time.UTC)
	return []user.User{
		{
			ID:        oid,
			Email:     "jose.munoz@gmail.cl",
			Password:  "$2a$10$abcdefghijklmnopqrstuuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0",
			Phone:     "+56912345678",
			Role:      user.RoleVIP,
			Balance:   523_400,
			CreatedAt: time.Date(2024, 11, 30, 23, 59, 59, 123_000_000, time.UTC),
			LastLogin: &login,
			Active:    true,
		},
		{
			ID:        primitive.NewObjectID(),
			Email:     "ñandú@outlook.cl",
			Password:  "hash",
			Phone:     "+56900000001",
			Role:      user.RoleTrial,
			Balance:   100_000,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			LastLogin: nil,
			Active:    false,
		},
	}
}

func TestMarshalExtendedJSON(t *testing.T) {
	data, err := Marshal(testUsers())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	wants := []string{
		`"_id": {`,
		`"$oid": "65f1c0ffee0123456789abcd"`,
		`"created_at": {`,
		`"$date": "2024-11-30T23:59:59.123Z"`,
		`"$date": "2025-02-03T04:05:06.789Z"`,
		`"last_login": null`,
		`"balance": 523400`,
		`"role": "vip"`,
		`"active": true`,
		`"active": false`,
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %s\n%s", w, out)
		}
	}

	if !strings.HasPrefix(out, "[\n  {\n    \"_id\"") {
		t.Errorf("unexpected layout:\n%s", out)
	}
}

func TestMarshalKeepsNonASCII(t *testing.T) {
	data, err := Marshal(testUsers())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !strings.Contains(string(data), "ñandú@outlook.cl") {
		t.Error("non-ascii text should be written literally")
	}
	if strings.Contains(string(data), `\u`) {
		t.Error("output should not contain unicode escapes")
	}
}

func TestMarshalFieldOrder(t *testing.T) {
	data, err := Marshal(testUsers()[:1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	keys := []string{"_id", "email", "password", "phone", "role", "balance", "created_at", "last_login", "active"}
	prev := -1
	for _, k := range keys {
		i := strings.Index(out, `"`+k+`"`)
		if i < 0 {
			t.Fatalf("key %q missing", k)
		}
		if i < prev {
			t.Errorf("key %q out of order", k)
		}
		prev = i
	}
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %q, want []", data)
	}
}

func TestMarshalIsValidJSON(t *testing.T) {
	data, err := Marshal(testUsers())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}

	id, ok := docs[0]["_id"].(map[string]any)
	if !ok || len(id) != 1 || id["$oid"] == nil {
		t.Errorf("_id should be a single-key $oid wrapper, got %v", docs[0]["_id"])
	}
	created, ok := docs[0]["created_at"].(map[string]any)
	if !ok || len(created) != 1 || created["$date"] == nil {
		t.Errorf("created_at should be a single-key $date wrapper, got %v", docs[0]["created_at"])
	}
	if v, present := docs[1]["last_login"]; !present || v != nil {
		t.Errorf("absent last_login should be an explicit null, got %v (present=%v)", v, present)
	}
}

func TestMarshalOne(t *testing.T) {
	u := testUsers()[0]
	data, err := MarshalOne(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "{\n  \"_id\": {\n    \"$oid\"") {
		t.Errorf("unexpected layout:\n%s", out)
	}
	if !strings.Contains(out, u.Email) {
		t.Errorf("missing email:\n%s", out)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	want := testUsers()

	if err := Write(fsys, "users.json", want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(fsys, "users.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	assertSameUsers(t, got, want)
}

func TestRoundTripGeneratedBatch(t *testing.T) {
	gen := user.New("Temp123!", user.DefaultDistribution(),
		user.WithSource(user.NewSource(31)),
		user.WithCost(bcrypt.MinCost),
	)
	want, err := gen.Generate(300)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fsys := zfilesystem.NewMemFS()
	if err := Write(fsys, "batch.json", want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(fsys, "batch.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	assertSameUsers(t, got, want)
}

func TestWriteFailure(t *testing.T) {
	fsys := zfilesystem.NewOSFileSystem(t.TempDir())

	// a regular file where a directory should be
	if err := fsys.WriteFile("blocker", []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := Write(fsys, "blocker/users.json", testUsers())
	if err == nil {
		t.Fatal("expected error writing beneath a regular file")
	}
	if !strings.Contains(err.Error(), "blocker/users.json") {
		t.Errorf("error should name the path, got %v", err)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(zfilesystem.NewMemFS(), "nope.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"object", `{"email":"x"}`, ErrNotArray},
		{"garbage", `not json`, nil},
		{"bad element", `[{"_id":{"$oid":"zz"}}]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func assertSameUsers(t *testing.T, got, want []user.User) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d users, want %d", len(got), len(want))
	}

	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID {
			t.Errorf("user %d: id %s, want %s", i, g.ID.Hex(), w.ID.Hex())
		}
		if g.Email != w.Email || g.Password != w.Password || g.Phone != w.Phone {
			t.Errorf("user %d: string fields differ: %+v vs %+v", i, g, w)
		}
		if g.Role != w.Role || g.Balance != w.Balance || g.Active != w.Active {
			t.Errorf("user %d: account fields differ: %+v vs %+v", i, g, w)
		}
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("user %d: created_at %s, want %s", i, g.CreatedAt, w.CreatedAt)
		}
		switch {
		case w.LastLogin == nil && g.LastLogin != nil:
			t.Errorf("user %d: last_login %s, want nil", i, g.LastLogin)
		case w.LastLogin != nil && g.LastLogin == nil:
			t.Errorf("user %d: last_login nil, want %s", i, w.LastLogin)
		case w.LastLogin != nil && !g.LastLogin.Equal(*w.LastLogin):
			t.Errorf("user %d: last_login %s, want %s", i, g.LastLogin, w.LastLogin)
		}
	}
}
