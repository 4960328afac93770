// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ContactInfo is the trainer's public contact block.
type ContactInfo struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	LinkedIn string
	YouTube  string
}
