package repository

import (
	"errors"
	"fmt"

	"auction-ranking/internal/auctionerrors"
	model "auction-ranking/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a SQL database for the given driver name ("postgres" or "sqlite")
func Connect(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is empty")
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if driver == "sqlite" {
		// every sqlite connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the auction tables
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil")
	}

	if err := db.AutoMigrate(&model.Auction{}, &model.Bid{}, &model.AuctionExtension{}, &model.ChallengePrice{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}

// GormRepo is a SQL implementation of AuctionDB
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo wraps an open, migrated database
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	return &GormRepo{db: db}, nil
}

func (r *GormRepo) CreateAuction(auction model.Auction) error {
	if auction.ID == "" {
		return fmt.Errorf("create auction: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	if err := r.db.Create(&auction).Error; err != nil {
		return fmt.Errorf("create auction %s: %w", auction.ID, err)
	}
	return nil
}

func (r *GormRepo) GetAuction(auctionID string) (model.Auction, error) {
	var auction model.Auction
	if err := r.db.Where("id = ?", auctionID).First(&auction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

func (r *GormRepo) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	query := r.db.Order("created_at, id")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	auctions := make([]model.Auction, 0)
	if err := query.Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

func (r *GormRepo) UpdateAuction(auction model.Auction) error {
	res := r.db.Model(&auction).Select("*").Updates(auction)
	if res.Error != nil {
		return fmt.Errorf("update auction %s: %w", auction.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update auction %s: %w", auction.ID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

func (r *GormRepo) RecordBid(bid model.Bid) error {
	if err := r.ensureAuction(bid.AuctionID); err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}
	if err := r.db.Create(&bid).Error; err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

func (r *GormRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	if err := r.ensureAuction(auctionID); err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}

	var bids []model.Bid
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at, bid_id").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

func (r *GormRepo) GetAuctionsByVendor(vendorID string) ([]model.Auction, error) {
	bidAuctions := r.db.Model(&model.Bid{}).Select("auction_id").Where("vendor_id = ?", vendorID)

	var auctions []model.Auction
	if err := r.db.Where("id IN (?)", bidAuctions).Order("created_at, id").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("get auctions for vendor %s: %w", vendorID, err)
	}
	if len(auctions) == 0 {
		return nil, fmt.Errorf("get auctions for vendor %s: %w", vendorID, auctionerrors.ErrVendorNoBids)
	}
	return auctions, nil
}

func (r *GormRepo) RecordExtension(ext model.AuctionExtension) error {
	if err := r.ensureAuction(ext.AuctionID); err != nil {
		return fmt.Errorf("record extension for auction %s: %w", ext.AuctionID, err)
	}
	if err := r.db.Create(&ext).Error; err != nil {
		return fmt.Errorf("record extension for auction %s: %w", ext.AuctionID, err)
	}
	return nil
}

func (r *GormRepo) GetExtensions(auctionID string) ([]model.AuctionExtension, error) {
	if err := r.ensureAuction(auctionID); err != nil {
		return nil, fmt.Errorf("get extensions for auction %s: %w", auctionID, err)
	}

	extensions := make([]model.AuctionExtension, 0)
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at, id").Find(&extensions).Error; err != nil {
		return nil, fmt.Errorf("get extensions for auction %s: %w", auctionID, err)
	}
	return extensions, nil
}

// SaveChallenge inserts the challenge, or updates every column when it exists
func (r *GormRepo) SaveChallenge(challenge model.ChallengePrice) error {
	if err := r.ensureAuction(challenge.AuctionID); err != nil {
		return fmt.Errorf("save challenge for auction %s: %w", challenge.AuctionID, err)
	}
	if err := r.db.Save(&challenge).Error; err != nil {
		return fmt.Errorf("save challenge %s: %w", challenge.ID, err)
	}
	return nil
}

func (r *GormRepo) GetChallenge(challengeID string) (model.ChallengePrice, error) {
	var c model.ChallengePrice
	if err := r.db.Where("id = ?", challengeID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ChallengePrice{}, fmt.Errorf("get challenge %s: %w", challengeID, auctionerrors.ErrChallengeNotFound)
		}
		return model.ChallengePrice{}, fmt.Errorf("get challenge %s: %w", challengeID, err)
	}
	return c, nil
}

func (r *GormRepo) GetChallengesByAuction(auctionID string) ([]model.ChallengePrice, error) {
	if err := r.ensureAuction(auctionID); err != nil {
		return nil, fmt.Errorf("get challenges for auction %s: %w", auctionID, err)
	}

	challenges := make([]model.ChallengePrice, 0)
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at, id").Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("get challenges for auction %s: %w", auctionID, err)
	}
	return challenges, nil
}

func (r *GormRepo) ensureAuction(auctionID string) error {
	var count int64
	if err := r.db.Model(&model.Auction{}).Where("id = ?", auctionID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return auctionerrors.ErrAuctionNotFound
	}
	return nil
}
