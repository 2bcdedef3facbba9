package team

import "time"

type Member struct {
	ID        string    `yaml:"id"`
	FullName  string    `yaml:"full_name"`
	Role      string    `yaml:"role"`
	CreatedAt time.Time `yaml:"created_at"`
}
