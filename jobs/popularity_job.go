package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PopularityRefreshJob periodically recomputes each model's popularity
// score from its approved reviews, so the popularity sort stays current
// without touching the read path.
type PopularityRefreshJob struct {
	db     *gorm.DB
	ticker *time.Ticker
	done   chan bool
}

func NewPopularityRefreshJob(db *gorm.DB, interval time.Duration) *PopularityRefreshJob {
	return &PopularityRefreshJob{
		db:     db,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the refresh job
func (j *PopularityRefreshJob) Start() {
	fmt.Println("Popularity refresh job started")

	go func() {
		// Run immediately on start
		j.refresh()

		for {
			select {
			case <-j.ticker.C:
				j.refresh()
			case <-j.done:
				fmt.Println("Popularity refresh job stopped")
				return
			}
		}
	}()
}

// Stop stops the refresh job
func (j *PopularityRefreshJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *PopularityRefreshJob) refresh() {
	// Score weighs review volume and average rating together
	err := j.db.Exec(`
		UPDATE models SET popularity_score = COALESCE((
			SELECT COUNT(*) * 2 + AVG(rating)
			FROM reviews
			WHERE reviews.model_id = models.id AND reviews.is_approved = 1
		), 0)`).Error
	if err != nil {
		fmt.Printf("Error refreshing popularity scores: %v\n", err)
		return
	}
}
