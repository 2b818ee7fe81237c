package models

type AdminLoginDto struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}
