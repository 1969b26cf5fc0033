package dataset

import (
	"bufio"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/inrae/bordaquery/oracle"
	"github.com/inrae/bordaquery/permutation"
)

// sushiRawItems is the number of ranked items in the raw sushi3a order
// file (10 sushi types per row).
const sushiRawItems = 10

// sushiKeptItems is how many of those items this package keeps, to
// match the Israeli-paper scale used throughout this module (items 0-5;
// items 6-9 are dropped, preserving relative order of the kept items).
const sushiKeptItems = 6

// loadSushiRows parses a sushi3a.*.order file: one header line giving
// the row count, then one row per user of "<id> <count> <item0> ...
// <item9>" whitespace-separated integers. Only the sushiKeptItems
// lowest-numbered items are retained per row, in their original
// relative order.
func loadSushiRows(path string) ([]permutation.Ranking, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var rows []permutation.Ranking
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue // header line: row count
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2+sushiRawItems {
			continue
		}
		raw := fields[2 : 2+sushiRawItems]
		kept := make(permutation.Ranking, 0, sushiKeptItems)
		for _, tok := range raw {
			item, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ErrMalformedRow
			}
			if item < sushiKeptItems {
				kept = append(kept, item)
			}
		}
		if len(kept) != sushiKeptItems {
			continue
		}
		rows = append(rows, kept)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// FixedSushi returns a deterministic block of the sushi order file: the
// first numMatrices*numUsersForInit rows as training data for the
// initial belief, and the first numVoters rows as the ground-truth
// rating matrix.
func FixedSushi(path string, numVoters, numMatrices, numUsersForInit int) (training []permutation.Ranking, ratings oracle.Ratings, err error) {
	rows, err := loadSushiRows(path)
	if err != nil {
		return nil, nil, err
	}
	trainingSize := numMatrices * numUsersForInit
	if len(rows) < trainingSize || len(rows) < numVoters {
		return nil, nil, ErrTooFewRows
	}
	training = rows[:trainingSize]
	ratings = rowsToRatings(rows[:numVoters])
	return training, ratings, nil
}

// RandomSushi draws a random contiguous block of numMatrices*numUsersForInit
// rows for the initial belief's training data, and an independently
// random contiguous block of numVoters rows as the ground-truth rating
// matrix.
func RandomSushi(path string, numVoters, numMatrices, numUsersForInit int, r *rand.Rand) (training []permutation.Ranking, ratings oracle.Ratings, err error) {
	rows, err := loadSushiRows(path)
	if err != nil {
		return nil, nil, err
	}
	trainingSize := numMatrices * numUsersForInit
	if len(rows) < trainingSize || len(rows) < numVoters {
		return nil, nil, ErrTooFewRows
	}

	trainStart := r.Intn(len(rows) - trainingSize + 1)
	training = rows[trainStart : trainStart+trainingSize]

	ratingStart := r.Intn(len(rows) - numVoters + 1)
	ratings = rowsToRatings(rows[ratingStart : ratingStart+numVoters])
	return training, ratings, nil
}

// Random generates numVoters independent uniformly random rankings of
// numCandidates candidates, and uses that same generated matrix as the
// training set for the initial belief.
func Random(numVoters, numCandidates int, r *rand.Rand) (training []permutation.Ranking, ratings oracle.Ratings, err error) {
	rows := make([]permutation.Ranking, numVoters)
	for i := range rows {
		rows[i] = r.Perm(numCandidates)
	}
	return rows, rowsToRatings(rows), nil
}

func rowsToRatings(rows []permutation.Ranking) oracle.Ratings {
	ratings := make(oracle.Ratings, len(rows))
	for i, row := range rows {
		ratings[i] = append([]int(nil), row...)
	}
	return ratings
}
