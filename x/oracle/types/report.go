package types

import (
	"strings"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
)

// HashPrefixLength is the number of leading hex characters of the file's
// SHA3-256 hash carried by a report.
const HashPrefixLength = 6

// CommonReportData is the part of a report shared by every contributor that
// claims the same (txid, ticket type).
type CommonReportData struct {
	Txid       string           `json:"txid"`
	TicketType PastelTicketType `json:"ticket_type"`
}

// TempStatusReport is one contributor's vote on a txid, kept until the txid
// is finalized or the report ages out.
type TempStatusReport struct {
	CommonDataRef uint64     `json:"common_data_ref"`
	Contributor   string     `json:"contributor"`
	Status        TxidStatus `json:"status"`
	HashPrefix    string     `json:"hash_prefix"`
	Timestamp     uint64     `json:"timestamp"`
}

// IsAccurate reports whether the report matches the consensus verdict.
func (r TempStatusReport) IsAccurate(status TxidStatus, hashPrefix string) bool {
	return r.Status == status && r.HashPrefix == hashPrefix
}

// SubmissionCount counts the reports received for a txid.
type SubmissionCount struct {
	Txid        string `json:"txid"`
	Count       uint32 `json:"count"`
	LastUpdated uint64 `json:"last_updated"`
}

// ValidateTxid checks that txid is non-blank, at most maxLength bytes and
// free of the collections string key delimiter.
func ValidateTxid(txid string, maxLength uint32) error {
	if strings.TrimSpace(txid) == "" {
		return errorsmod.Wrap(ErrInvalidTxid, "txid is empty")
	}
	if uint32(len(txid)) > maxLength {
		return errorsmod.Wrapf(ErrInvalidTxid, "txid length %d exceeds %d", len(txid), maxLength)
	}
	if strings.IndexByte(txid, collcodec.StringDelimiter) >= 0 {
		return errorsmod.Wrap(ErrInvalidTxid, "txid contains a NUL byte")
	}
	return nil
}

// ValidateHashPrefix checks that hash is exactly six lowercase hex characters.
func ValidateHashPrefix(hash string) error {
	if hash == "" {
		return ErrMissingFileHash
	}
	if len(hash) != HashPrefixLength {
		return errorsmod.Wrapf(ErrInvalidFileHashLength, "got %d characters", len(hash))
	}
	for _, c := range hash {
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return errorsmod.Wrapf(ErrInvalidFileHashLength, "non-hex character %q", c)
		}
	}
	return nil
}
