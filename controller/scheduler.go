package controller

import (
	"context"
	"log"
	"sync"
	"time"
)

func (c *controller) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			c.runSyncCycle(ctx)
			cancel()
		}
	}
}

// runSyncCycle refreshes the current week's games and settles the previous
// week once its games have final scores. The previous week is only revisited
// within the same phase; cross-phase boundaries are handled by the weekly
// admin settle.
func (c *controller) runSyncCycle(ctx context.Context) {
	season := c.clock.Now().UTC().Year()

	phase, week, err := c.ResolveCurrentWeek(ctx)
	if err != nil {
		log.Printf("periodic sync: resolving current week: %v", err)
		return
	}

	if _, err := c.SyncGames(ctx, season, phase, week); err != nil {
		log.Printf("periodic sync: syncing week %d games: %v", week, err)
		return
	}

	if week > 1 {
		prev := week - 1
		if _, err := c.SyncGames(ctx, season, phase, prev); err != nil {
			log.Printf("periodic sync: syncing week %d games: %v", prev, err)
			return
		}
		if _, err := c.SettlePicks(ctx, season, phase, prev); err != nil {
			log.Printf("periodic sync: settling week %d picks: %v", prev, err)
		}
	}
}
