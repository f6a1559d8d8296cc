package query

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kava-labs/collateral-monitor/types"
)

var errInvalidJSON = errors.New("response is not valid json")

// DecodeRestResponse decodes a REST smart query body and its position list.
// A body that is valid json but not an object holds no positions.
func DecodeRestResponse(body []byte, logger zerolog.Logger) (types.PositionSet, error) {
	if !json.Valid(body) {
		return nil, errInvalidJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Debug().Msg("response body is not an object, no positions")
		return types.PositionSet{}, nil
	}
	return DecodePositions(envelope["data"], logger)
}

// DecodePositions decodes a json array of {"amount": "<int>", "denom": "<denom>"}.
//
// Decoding is lenient: an amount that is missing, not a string or not a base
// 10 integer becomes zero, and a list that is missing, null or not an array is
// empty. Only invalid json fails. Items without a denom are skipped rather
// than kept under an empty denom, so their amount does not count towards the
// totals.
func DecodePositions(data json.RawMessage, logger zerolog.Logger) (types.PositionSet, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return types.PositionSet{}, nil
	}
	if !json.Valid(data) {
		return nil, errInvalidJSON
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Debug().Msg("response data is not an array, no positions")
		return types.PositionSet{}, nil
	}

	positions := make(types.PositionSet, 0, len(items))
	for index, item := range items {
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(item, &fields); err != nil {
			logger.Debug().Int("index", index).Msg("skipping position that is not an object")
			continue
		}

		denom := stringField(fields, "denom")
		if denom == "" {
			logger.Debug().Int("index", index).Msg("skipping position without denom")
			continue
		}

		amountText := stringField(fields, "amount")
		amount, err := types.ParseUint128(amountText)
		if err != nil {
			logger.Debug().
				Int("index", index).
				Str("denom", denom).
				Str("amount", amountText).
				Err(err).
				Msg("invalid position amount, using zero")
			amount = types.ZeroUint128()
		}

		positions = append(positions, types.TokenAmount{Denom: denom, Amount: amount})
	}

	return positions, nil
}

// stringField returns the field as a string, or "" if it is missing or not a json string
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
