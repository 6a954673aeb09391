package models

// AllModels lists every table model in creation order, for automigration.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Admin{},
		&Ad{},
		&WalletTransaction{},
	}
}
