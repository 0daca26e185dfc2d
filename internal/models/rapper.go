package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrInvalidRapper is returned by Validate for records that break the
// load-time invariants.
var ErrInvalidRapper = errors.New("invalid rapper")

// Rapper represents a rapper listing owned by a user.
// Field order defines the column order of the rappers table.
type Rapper struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	Songs     string    `json:"songs"` // comma-separated
	Awards    int       `json:"awards"`
	Price     string    `json:"price"` // human formatted, e.g. "$70/hr"
	Rating    float64   `gorm:"type:double precision" json:"rating"`
	Image     string    `gorm:"type:text" json:"image"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Rapper) TableName() string {
	return "rappers"
}

// SongList splits Songs into its trimmed, non-empty entries.
func (r Rapper) SongList() []string {
	var songs []string
	for _, song := range strings.Split(r.Songs, ",") {
		if s := strings.TrimSpace(song); s != "" {
			songs = append(songs, s)
		}
	}
	return songs
}

// Validate checks the invariants of a literal rapper record.
// Rating is bounded to the 0.0-5.0 scale.
func (r Rapper) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRapper)
	}
	if r.Awards < 0 {
		return fmt.Errorf("%w: %s: awards must not be negative, got %d", ErrInvalidRapper, r.Name, r.Awards)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("%w: %s: rating must be within 0.0-5.0, got %g", ErrInvalidRapper, r.Name, r.Rating)
	}
	return nil
}

// String renders the attribute set of the record, without persistence fields.
func (r Rapper) String() string {
	return fmt.Sprintf("{name: %q, genre: %q, songs: %q, awards: %d, price: %q, rating: %g, image: %q}",
		r.Name, r.Genre, r.Songs, r.Awards, r.Price, r.Rating, r.Image)
}

// LogFields returns the record as structured logging fields.
func (r Rapper) LogFields() logrus.Fields {
	return logrus.Fields{
		"rapper_id": r.ID,
		"name":      r.Name,
		"genre":     r.Genre,
		"songs":     r.Songs,
		"awards":    r.Awards,
		"price":     r.Price,
		"rating":    r.Rating,
		"image":     r.Image,
		"user_id":   r.UserID,
	}
}
