package model

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Image represents an image extracted from a document
type Image struct {
	// ID is unique within the document
	ID       string `json:"id"`
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
	// Alt text or caption if available from the source
	AltText string `json:"alt_text,omitempty"`
	// Description filled in by an image describer
	Description string `json:"description,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	// PageNumber is 0 when unknown
	PageNumber uint32 `json:"page_number,omitempty"`
}

// NewImage creates an image with a random ID
func NewImage(data []byte, mimeType string) *Image {
	return &Image{
		ID:       uuid.NewString(),
		Data:     data,
		MIMEType: mimeType,
	}
}

// DisplayText returns the description, falling back to the alt text
func (i *Image) DisplayText() string {
	if i.Description != "" {
		return i.Description
	}
	return i.AltText
}

// Placeholder returns a markdown reference that can be swapped for the
// image later
func (i *Image) Placeholder() string {
	return "![Image: " + i.ID + "](image:" + i.ID + ")"
}

// Base64 returns the standard base64 encoding of the image data
func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// clone returns a copy that shares no memory with i
func (i *Image) clone() *Image {
	if i == nil {
		return nil
	}
	c := *i
	if i.Data != nil {
		c.Data = append([]byte(nil), i.Data...)
	}
	return &c
}
