package model

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&AccountModel{},
		&AuthenticationModel{},
		&QuestionnaireModel{},
		&QuestionModel{},
		&ProductModel{},
		&ResponseModel{},
		&DeviceModel{},
	}
}
