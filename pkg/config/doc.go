// Package config loads the description of a coffee maker from a JSON or
// YAML file: slot capacity, starting stock, sales log size and the recipes
// to seed.
//
//	m, err := config.Load("machine.yaml")
//	if err != nil { ... }
//	cm := coffeemaker.New(m.Options()...)
//
// Optional numeric settings are pointers so that an explicit zero can be
// told apart from an omitted field; Validate rejects the former.
package config
