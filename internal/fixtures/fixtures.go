// Package fixtures holds the seed data every record store starts from.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"go.uber.org/multierr"

	"github.com/skillswap/skillswap-backend/internal/messages"
	"github.com/skillswap/skillswap-backend/internal/notifications"
	"github.com/skillswap/skillswap-backend/internal/sessions"
	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/internal/users"
)

//go:embed data/*.json
var embedded embed.FS

// Seed is the initial contents of the five stores.
type Seed struct {
	Skills        []skills.Skill
	Sessions      []sessions.Session
	Messages      []messages.Message
	Notifications []notifications.Notification
	Users         []users.User
}

// Load decodes the embedded seed files.
func Load() (Seed, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return Seed{}, err
	}
	return LoadFS(sub)
}

// LoadFS decodes seed files from fsys. Every file is attempted; all decode
// failures are reported together.
func LoadFS(fsys fs.FS) (Seed, error) {
	var seed Seed
	err := multierr.Combine(
		decode(fsys, "skills.json", &seed.Skills),
		decode(fsys, "sessions.json", &seed.Sessions),
		decode(fsys, "messages.json", &seed.Messages),
		decode(fsys, "notifications.json", &seed.Notifications),
		decode(fsys, "users.json", &seed.Users),
	)
	return seed, err
}

func decode(fsys fs.FS, name string, into any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
