// Package models holds the value types shared by the SIN and SSN validators.
package models
