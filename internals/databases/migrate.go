package database

import (
	"log"

	assistantModel "eventku_backend/internals/features/assistant/model"
	eventModel "eventku_backend/internals/features/events/event/model"
	registrationModel "eventku_backend/internals/features/registrations/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate untuk seluruh tabel.
// Urutan penting: parent dulu baru child (FK).
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&eventModel.EventModel{},
		&eventModel.PrizeModel{},
		&eventModel.ScheduleItemModel{},
		&eventModel.TeamModel{},
		&eventModel.TeamMemberModel{},
		&eventModel.ChatMessageModel{},
		&registrationModel.RegistrationModel{},
		&assistantModel.AssistantInvocationModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
