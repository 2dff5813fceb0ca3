package model

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ProjectModel{},
		&ProjectViewModel{},
		&BlogPostModel{},
		&SkillCategoryModel{},
		&ContactMessageModel{},
	}
}
