package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type expiredCacheRepository interface {
	RemoveExpired(ctx context.Context, now time.Time) (int64, error)
}

// CacheCleaner periodically reaps expired cache rows. Reads re-check the TTL
// themselves, so nothing depends on this running promptly; it only keeps the
// table from accumulating dead rows.
type CacheCleaner struct {
	vacancies expiredCacheRepository
	cron      *cron.Cron
}

func NewCacheCleaner(vacancies expiredCacheRepository) (*CacheCleaner, error) {

	cc := &CacheCleaner{
		vacancies: vacancies,
		cron:      cron.New(),
	}

	_, err := cc.cron.AddFunc("0 0 * * *", cc.cleanExpiredRows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to schedule cache cleanup")
	}

	cc.cron.Start()
	log.Info("vacancy cache cleaner started")
	return cc, nil
}

func (cc *CacheCleaner) Stop() {
	cc.cron.Stop()
}

func (cc *CacheCleaner) cleanExpiredRows() {
	rowsAffected, err := cc.vacancies.RemoveExpired(context.Background(), time.Now().UTC())
	if err != nil {
		log.Errorf("failed to clean expired vacancy cache rows: %v", err)
	} else {
		log.Infof("expired vacancy cache rows cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
