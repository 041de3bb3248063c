package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID creates a short random identifier, used for generated passwords
// and one-off tokens.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
