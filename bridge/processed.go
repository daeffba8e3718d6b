package bridge

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/0xPolygon/lockbridge/db"
	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxNonce is the highest nonce the bridge can assign or redeem. SQLite
// integers are signed 64 bits.
const MaxNonce = uint64(math.MaxInt64)

// MaxAmountBits is the width of the largest amount the bridge accepts
const MaxAmountBits = 256

type processedKey struct {
	direction Direction
	nonce     uint64
}

// processedSet is the persistent set of redeemed nonces of each direction.
// A nonce n is processed when n <= watermark or a processed_nonce row exists.
// Rows that become contiguous with the watermark are folded into it.
type processedSet struct {
	maxPending uint64
	cache      *lru.Cache[processedKey, struct{}]
}

func newProcessedSet(cfg ProcessedNoncesConfig) (*processedSet, error) {
	p := &processedSet{maxPending: cfg.MaxPending}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[processedKey, struct{}](cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		p.cache = cache
	}
	return p, nil
}

func (p *processedSet) contains(q db.Querier, direction Direction, nonce uint64) (bool, error) {
	if p.cache != nil && p.cache.Contains(processedKey{direction, nonce}) {
		return true, nil
	}
	watermark, err := getWatermark(q, direction)
	if err != nil {
		return false, err
	}
	if nonce <= watermark {
		return true, nil
	}
	var found int
	err = q.QueryRow(`SELECT 1 FROM processed_nonce WHERE direction = $1 AND nonce = $2;`,
		direction, nonce).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// insert marks nonce as processed inside tx. The cache is only updated once tx commits.
func (p *processedSet) insert(tx *db.Tx, direction Direction, nonce, now uint64) error {
	watermark, err := getWatermark(tx, direction)
	if err != nil {
		return err
	}
	if nonce <= watermark {
		return ErrAlreadyProcessed
	}
	if p.maxPending > 0 && nonce != watermark+1 {
		pending, err := countPending(tx, direction)
		if err != nil {
			return err
		}
		if pending >= p.maxPending {
			return fmt.Errorf("%w: %d nonces pending above %d for %s",
				ErrProcessedSetFull, pending, watermark, direction)
		}
	}
	_, err = tx.Exec(`INSERT INTO processed_nonce (direction, nonce, processed_at) VALUES ($1, $2, $3);`,
		direction, nonce, now)
	if err != nil {
		if db.IsKeyViolation(err) {
			return ErrAlreadyProcessed
		}
		return err
	}
	if nonce == watermark+1 {
		if err := compact(tx, direction, watermark); err != nil {
			return err
		}
	}
	if p.cache != nil {
		tx.AddCommitCallback(func() {
			p.cache.Add(processedKey{direction, nonce}, struct{}{})
		})
	}
	return nil
}

// compact folds the run of rows contiguous to watermark into a new watermark
func compact(tx db.Querier, direction Direction, watermark uint64) error {
	rows, err := tx.Query(`SELECT nonce FROM processed_nonce WHERE direction = $1 AND nonce > $2 ORDER BY nonce ASC;`,
		direction, watermark)
	if err != nil {
		return err
	}
	newWatermark := watermark
	for rows.Next() {
		var nonce uint64
		if err := rows.Scan(&nonce); err != nil {
			rows.Close()
			return err
		}
		if nonce != newWatermark+1 {
			break
		}
		newWatermark = nonce
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if newWatermark == watermark {
		return nil
	}
	if _, err := tx.Exec(`DELETE FROM processed_nonce WHERE direction = $1 AND nonce <= $2;`,
		direction, newWatermark); err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO processed_watermark (direction, watermark) VALUES ($1, $2)
		ON CONFLICT (direction) DO UPDATE SET watermark = excluded.watermark;`,
		direction, newWatermark)
	return err
}

func getWatermark(q db.Querier, direction Direction) (uint64, error) {
	var watermark uint64
	err := q.QueryRow(`SELECT watermark FROM processed_watermark WHERE direction = $1;`,
		direction).Scan(&watermark)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return watermark, err
}

func countPending(q db.Querier, direction Direction) (uint64, error) {
	var count uint64
	err := q.QueryRow(`SELECT COUNT(*) FROM processed_nonce WHERE direction = $1;`, direction).Scan(&count)
	return count, err
}
