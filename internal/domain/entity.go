package domain

import (
	"time"
)

// CoinInfo is the asset catalog entry for a mirrored coin icon.
// It never holds market values.
type CoinInfo struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Symbol       string    `json:"symbol" gorm:"index"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	IconPath     string    `json:"icon_path"`
	LastSyncedAt time.Time `json:"last_synced_at"` // Last icon download time
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasIcon reports whether an icon has been mirrored for this coin.
func (c *CoinInfo) HasIcon() bool {
	return c != nil && c.IconPath != "" && !c.LastSyncedAt.IsZero()
}
