package ledger

import "paytrack/internal/model"

// DefaultCategories returns the label lists a fresh installation starts with.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			ID:   model.CategoryBank,
			Name: model.CategoryBank.DisplayName(),
			Labels: []string{
				"Halk Bankası",
				"Halk Bankası Hamiline",
				"Ziraat Bankası",
				"Ziraat Bankası Hamiline",
				"Deniz Bank",
			},
		},
		{
			ID:   model.CategoryCompany,
			Name: model.CategoryCompany.DisplayName(),
			Labels: []string{
				"DOĞU İNŞAAT",
				"DOĞU İNŞAAT HAMİLİNE",
				"ALTAY",
				"ALTAY HAMİLİNE",
				"ONURAY İNŞAAT",
			},
		},
		{
			ID:   model.CategoryBusinessGroup,
			Name: model.CategoryBusinessGroup.DisplayName(),
			Labels: []string{
				"KULU",
				"CİHANBEYLİ",
				"AKHİSAR",
				"AKSARAY",
				"ESENYURT",
				"SHİFA",
				"KONYA OKUL",
				"OKUL ONARIM",
				"HATIR ÇEKİ",
				"DİĞER",
			},
		},
	}
}

// DefaultAdmin returns the bootstrap account created when no users exist:
// a single administrator holding all six permissions.
func DefaultAdmin() model.User {
	return model.User{
		ID:          "1",
		Username:    "admin",
		Password:    "admin",
		Permissions: model.AllPermissions(),
	}
}
