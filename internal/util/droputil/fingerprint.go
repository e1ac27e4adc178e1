package droputil

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"

	"github.com/collectionlog/backend/internal/model"
)

// Fingerprint hashes the serialized response so that two responses with the same
// JSON body share a fingerprint. Source order is significant.
func Fingerprint(resp *model.ItemDropsResponse) (string, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal item drops for fingerprint")
	}

	return strconv.FormatUint(xxh3.HashSeed(body, 0), 16), nil
}
