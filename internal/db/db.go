package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Service{},
		&models.WorkingDay{},
		&models.Customer{},
		&models.Appointment{},
		&models.Absence{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE businesses
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)

	if err := installOverlapBackstop(db); err != nil {
		log.Fatalf("failed to install overlap constraint: %v", err)
	}

	return db
}

// installOverlapBackstop cria a exclusion constraint: dois CONFIRMED do
// mesmo negócio nunca se sobrepõem. Em slot livre o count com FOR UPDATE
// não tranca linha nenhuma, então a constraint é a única defesa contra
// duas transações inserindo em paralelo. Sem ela o processo não sobe.
func installOverlapBackstop(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
        DO $$
        BEGIN
            ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    business_id WITH =,
                    tstzrange(start_at, end_at) WITH &&
                )
                WHERE (status = 'CONFIRMED');
        EXCEPTION
            WHEN duplicate_object THEN NULL;
        END $$
    `).Error
}
