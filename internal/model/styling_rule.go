package model

// TopsGuide lists recommended and discouraged tops for a body type.
type TopsGuide struct {
	Best      []string `json:"best"`
	Necklines []string `json:"necklines,omitempty"`
	Sleeves   []string `json:"sleeves,omitempty"`
	Details   []string `json:"details,omitempty"`
	Avoid     []string `json:"avoid,omitempty"`
}

// BottomsGuide lists recommended bottoms by garment family.
type BottomsGuide struct {
	Pants  []string `json:"pants,omitempty"`
	Jeans  []string `json:"jeans,omitempty"`
	Skirts []string `json:"skirts,omitempty"`
	Shorts []string `json:"shorts,omitempty"`
}

// Outerwear lists recommended jackets and coats.
type Outerwear struct {
	Jackets []string `json:"jackets,omitempty"`
	Coats   []string `json:"coats,omitempty"`
}

// ColorGuide describes how to use color for a body type.
type ColorGuide struct {
	Do    string `json:"do"`
	Avoid string `json:"avoid"`
}

// StylingRule is the static styling guidance for one body type.
type StylingRule struct {
	Outerwear   *Outerwear   `json:"outerwear,omitempty"`
	Colors      ColorGuide   `json:"colors"`
	Description string       `json:"description"`
	Goals       []string     `json:"goals"`
	Dresses     []string     `json:"dresses,omitempty"`
	Blazers     []string     `json:"blazers,omitempty"`
	Jumpsuits   []string     `json:"jumpsuits,omitempty"`
	Coats       []string     `json:"coats,omitempty"`
	Tops        TopsGuide    `json:"tops"`
	Bottoms     BottomsGuide `json:"bottoms"`
}
