package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Databases bundles the connections the admin API uses: GORM over the
// ecommerce and CMS databases for list queries, pgx over the CMS database
// for saved views.
type Databases struct {
	CmsDB         *pgxpool.Pool
	CmsGorm       *gorm.DB
	EcommerceGorm *gorm.DB
}

func InitDB(cfg Config, log *zap.Logger) (*Databases, error) {
	ctx, cancel := WithTimeout()
	defer cancel()

	cmsPool, err := pgxpool.New(ctx, cfg.CmsDBURL)
	if err != nil {
		return nil, fmt.Errorf("connect CMS database: %w", err)
	}
	if err := cmsPool.Ping(ctx); err != nil {
		cmsPool.Close()
		return nil, fmt.Errorf("ping CMS database: %w", err)
	}
	log.Info("CMS database connected (pgx)")

	dbs := &Databases{CmsDB: cmsPool}
	if dbs.CmsGorm, err = openGorm(cfg, cfg.CmsDBURL); err != nil {
		dbs.Close(log)
		return nil, fmt.Errorf("connect CMS database with GORM: %w", err)
	}
	log.Info("CMS database connected (GORM)")

	if dbs.EcommerceGorm, err = openGorm(cfg, cfg.EcommerceDBURL); err != nil {
		dbs.Close(log)
		return nil, fmt.Errorf("connect ecommerce database with GORM: %w", err)
	}
	log.Info("Ecommerce database connected (GORM)")

	return dbs, nil
}

func openGorm(cfg Config, dsn string) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	return db, nil
}

func (d *Databases) Close(log *zap.Logger) {
	if d.CmsDB != nil {
		d.CmsDB.Close()
		log.Info("CMS database connection closed (pgx)")
	}
	for name, g := range map[string]*gorm.DB{"CMS": d.CmsGorm, "Ecommerce": d.EcommerceGorm} {
		if g == nil {
			continue
		}
		if sqlDB, _ := g.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Info("database connection closed (GORM)", zap.String("db", name))
		}
	}
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
