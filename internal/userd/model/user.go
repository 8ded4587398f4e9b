// Copyright © 2025 jackelyj <dreamerlyj@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
//

package model

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// User is the user model.
//
//	@Description	Registered user record
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	Name      string    `gorm:"not null" json:"name" example:"John Doe"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" example:"john@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// CreateUserRequest represents the request body for creating a new user
//
//	@Description	Request body for creating a new user
type CreateUserRequest struct {
	Name  string `json:"name" example:"John Doe"`
	Email string `json:"email" example:"john@example.com"`
}

// emailPattern is the accepted email shape: ASCII local part, domain, TLD of
// at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the candidate request and returns the reason the first
// failing check rejects it, or the empty string when the request is valid.
// Checks run in a fixed order; only a nil candidate counts as no data at
// all, a present-but-empty field gets its own reason. Name length counts
// characters, not bytes.
func (r *CreateUserRequest) Validate() string {
	if r == nil {
		return "No data provided"
	}
	if r.Name == "" {
		return "Name is required"
	}
	if r.Email == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(r.Email) {
		return "Invalid email format"
	}
	if n := utf8.RuneCountInString(r.Name); n < 2 || n > 50 {
		return "Name must be between 2 and 50 characters"
	}
	return ""
}
