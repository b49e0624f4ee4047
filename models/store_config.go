package models

import (
	"errors"
	"fmt"
)

type PopupType string

const (
	PopupInfo      PopupType = "info"
	PopupWarning   PopupType = "warning"
	PopupSuccess   PopupType = "success"
	PopupPromotion PopupType = "promotion"
)

func (t PopupType) Valid() bool {
	switch t {
	case PopupInfo, PopupWarning, PopupSuccess, PopupPromotion:
		return true
	}
	return false
}

type PopupPosition string

const (
	PositionCenter PopupPosition = "center"
	PositionTop    PopupPosition = "top"
	PositionBottom PopupPosition = "bottom"
)

func (p PopupPosition) Valid() bool {
	switch p {
	case PositionCenter, PositionTop, PositionBottom:
		return true
	}
	return false
}

type ButtonAction string

const (
	ActionClose    ButtonAction = "close"
	ActionRedirect ButtonAction = "redirect"
)

func (a ButtonAction) Valid() bool {
	switch a {
	case ActionClose, ActionRedirect:
		return true
	}
	return false
}

type PopupConfig struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Type         PopupType     `json:"type"`
	Enabled      bool          `json:"enabled"`
	ShowOnce     bool          `json:"showOnce"`
	Delay        int           `json:"delay"`
	Position     PopupPosition `json:"position"`
	ButtonText   string        `json:"buttonText"`
	ButtonAction ButtonAction  `json:"buttonAction"`
	RedirectURL  string        `json:"redirectUrl,omitempty"`
}

func (p PopupConfig) Validate() error {
	if p.ID == "" {
		return errors.New("popup id is required")
	}
	if !p.Type.Valid() {
		return fmt.Errorf("popup %s: unknown type %q", p.ID, p.Type)
	}
	if !p.Position.Valid() {
		return fmt.Errorf("popup %s: unknown position %q", p.ID, p.Position)
	}
	if !p.ButtonAction.Valid() {
		return fmt.Errorf("popup %s: unknown button action %q", p.ID, p.ButtonAction)
	}
	if p.Delay < 0 {
		return fmt.Errorf("popup %s: delay cannot be negative", p.ID)
	}
	if p.ButtonAction == ActionRedirect && p.RedirectURL == "" {
		return fmt.Errorf("popup %s: redirect action requires redirectUrl", p.ID)
	}
	return nil
}

type StoreConfig struct {
	StoreName      string        `json:"storeName"`
	Logo           string        `json:"logo"`
	PrimaryColor   string        `json:"primaryColor"`
	SecondaryColor string        `json:"secondaryColor"`
	AccentColor    string        `json:"accentColor"`
	Popups         []PopupConfig `json:"popups"`
}

func (c StoreConfig) Validate() error {
	if c.StoreName == "" {
		return errors.New("storeName is required")
	}
	seen := make(map[string]bool, len(c.Popups))
	for _, p := range c.Popups {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate popup id %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c StoreConfig) Clone() StoreConfig {
	out := c
	out.Popups = make([]PopupConfig, len(c.Popups))
	copy(out.Popups, c.Popups)
	return out
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		StoreName:      "Mi Ferretería",
		Logo:           "",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#64748B",
		AccentColor:    "#D946EF",
		Popups: []PopupConfig{
			{
				ID:           "1",
				Title:        "¡Bienvenido a nuestra tienda!",
				Content:      "Descubre nuestros productos exclusivos y ofertas especiales.",
				Type:         PopupInfo,
				Enabled:      true,
				ShowOnce:     true,
				Delay:        3000,
				Position:     PositionCenter,
				ButtonText:   "Entendido",
				ButtonAction: ActionClose,
			},
		},
	}
}
