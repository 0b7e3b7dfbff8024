package memory

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"

	"usercenter/internal/model"
	"usercenter/pkg/json"
)

//go:embed fixture/users.json
var fixture []byte

// Fixture decodes the user list bundled with the binary
func Fixture() ([]*model.User, error) {
	var users []*model.User
	if err := json.Decode(bytes.NewReader(fixture), &users); err != nil {
		return nil, errors.Wrap(err, "decode bundled users")
	}
	return users, nil
}
