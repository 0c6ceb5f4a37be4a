package models

import (
	"encoding/json"
)

type OrderItem struct {
	Name      string  `json:"name"`
	Served_by *string `json:"served_by"`
}

type Order struct {
	ID              int         `json:"id"`
	Table           string      `json:"table" validate:"required"`
	Name            string      `json:"name" validate:"required"`
	Items           []OrderItem `json:"items"`
	Total           int         `json:"total" validate:"min=0"`
	Song            string      `json:"song"`
	Image_path      *string     `json:"image_path"`
	Timestamp       string      `json:"timestamp"`
	Processed       bool        `json:"processed"`
	Table_size      int         `json:"table_size"`
	Consent_privacy bool        `json:"consent_privacy"`
	Consent_terms   bool        `json:"consent_terms"`
}

// ParseItems normalizes the raw item payload from the order form. It accepts
// a JSON array mixing plain name strings and {name, served_by} records; any
// payload that does not parse as such a list is kept as a single opaque item
// so the order is still captured.
func ParseItems(raw string) []OrderItem {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []OrderItem{{Name: raw}}
	}
	items := make([]OrderItem, 0, len(entries))
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			items = append(items, OrderItem{Name: name})
			continue
		}
		var item OrderItem
		if err := json.Unmarshal(entry, &item); err != nil {
			return []OrderItem{{Name: raw}}
		}
		items = append(items, item)
	}
	return items
}

// EncodeItems serializes items into the TEXT column form.
func EncodeItems(items []OrderItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeItems is the strict counterpart used when reading the column back.
// A payload that does not decode means prior data corruption.
func DecodeItems(raw string) ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, ErrCorruptItems
	}
	return items, nil
}

// ServeItem marks the item at index as served by admin, or clears the
// attribution when admin is the empty string.
func ServeItem(items []OrderItem, index int, admin string) error {
	if index < 0 || index >= len(items) {
		return ErrInvalidIndex
	}
	if admin == "" {
		items[index].Served_by = nil
		return nil
	}
	items[index].Served_by = &admin
	return nil
}

// CompleteItems attributes every still-unserved item to "system". Items a
// staff member already served keep their attribution.
func CompleteItems(items []OrderItem) {
	system := "system"
	for i := range items {
		if items[i].Served_by == nil || *items[i].Served_by == "" {
			items[i].Served_by = &system
		}
	}
}
