package model

type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	StatBlock
}
