package database

import (
	"github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

// SeedPracticeBank installs a starter set of remediation exercises so
// the recommendation engine has material for every issue category on a
// fresh database. Re-running is a no-op per item.
func SeedPracticeBank(db *gorm.DB) error {
	items := []entity.PracticeItem{
		{
			ItemID:          "seed-semantic-1",
			Category:        "semantic",
			Prompt:          "Translate into Arabic, keeping every idea of the source: \"The committee postponed its decision until further evidence becomes available.\"",
			ReferenceAnswer: "أجلت اللجنة قرارها حتى تتوفر أدلة إضافية.",
		},
		{
			ItemID:          "seed-semantic-2",
			Category:        "semantic",
			Prompt:          "Translate into Arabic without dropping the condition: \"Unless it rains, the match will start at noon.\"",
			ReferenceAnswer: "ما لم تمطر، ستبدأ المباراة عند الظهر.",
		},
		{
			ItemID:          "seed-idiom-1",
			Category:        "idiom",
			Prompt:          "Translate idiomatically, not word for word: \"He broke the ice with a joke.\"",
			ReferenceAnswer: "كسر الجليد بمزحة.",
		},
		{
			ItemID:          "seed-idiom-2",
			Category:        "idiom",
			Prompt:          "Find the Arabic equivalent of the idiom: \"It costs an arm and a leg.\"",
			ReferenceAnswer: "يكلف مبلغا باهظا.",
		},
		{
			ItemID:          "seed-grammar-1",
			Category:        "grammar",
			Prompt:          "Correct the agreement error: \"الطلاب يدرس في المكتبة.\"",
			ReferenceAnswer: "الطلاب يدرسون في المكتبة.",
		},
		{
			ItemID:          "seed-grammar-2",
			Category:        "grammar",
			Prompt:          "Rewrite with correct word order: \"قرأ الكتاب الطالبُ الجديدَ.\"",
			ReferenceAnswer: "قرأ الطالبُ الكتابَ الجديدَ.",
		},
		{
			ItemID:          "seed-collocation-1",
			Category:        "collocation",
			Prompt:          "Pick the natural collocation and translate: \"She made/did a decision about the offer.\"",
			ReferenceAnswer: "اتخذت قرارا بشأن العرض.",
		},
		{
			ItemID:          "seed-collocation-2",
			Category:        "collocation",
			Prompt:          "Translate using the conventional pairing: \"heavy rain delayed the flight\"",
			ReferenceAnswer: "أدى المطر الغزير إلى تأخير الرحلة.",
		},
	}

	for i := range items {
		items[i].CreatedBy = "instructor"
		err := db.Where("item_id = ?", items[i].ItemID).FirstOrCreate(&items[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
