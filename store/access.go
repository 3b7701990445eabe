package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Grant statuses.
const (
	GrantGranted = "granted"
	GrantFailed  = "failed"
)

// Grant reports the outcome of one access grant.
type Grant struct {
	Address string `json:"address"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// ledger is the persisted access record for one resource. Provider-side
// ACL enforcement is the storage backend's concern; the ledger is the
// store's durable record of who was granted what.
type ledger struct {
	Resource string        `json:"resource"`
	Grants   []ledgerGrant `json:"grants"`
}

type ledgerGrant struct {
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	GrantedAt time.Time `json:"grantedAt"`
}

const accessFile = "access.json"

// GrantAccess records an access grant for each address against the
// resource and returns per-address results. The resource is a folder URL
// (ledger kept inside the folder) or an opaque identifier (ledger kept
// under the store root).
func (s *Service) GrantAccess(ctx context.Context, resource string, addresses []string, role string) ([]Grant, error) {
	ledgerURL := s.ledgerURL(resource)
	record, err := s.loadLedger(ctx, ledgerURL, resource)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, address := range addresses {
		record.upsert(ledgerGrant{Address: address, Role: role, GrantedAt: now})
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode access ledger: %w", err)
	}
	if err := s.fs.Upload(ctx, ledgerURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to write access ledger %v: %w", ledgerURL, err)
	}
	grants := make([]Grant, 0, len(addresses))
	for _, address := range addresses {
		grants = append(grants, Grant{Address: address, Status: GrantGranted, Detail: role})
	}
	return grants, nil
}

func (s *Service) ledgerURL(resource string) string {
	if url.Scheme(resource, "") != "" {
		return url.Join(resource, accessFile)
	}
	return url.Join(s.root, "_grants", SanitizeName(resource)+".json")
}

func (s *Service) loadLedger(ctx context.Context, ledgerURL, resource string) (*ledger, error) {
	ok, _ := s.fs.Exists(ctx, ledgerURL)
	if !ok {
		return &ledger{Resource: resource}, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, ledgerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read access ledger %v: %w", ledgerURL, err)
	}
	record := &ledger{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to decode access ledger %v: %w", ledgerURL, err)
	}
	if record.Resource == "" {
		record.Resource = resource
	}
	return record, nil
}

func (l *ledger) upsert(grant ledgerGrant) {
	for i := range l.Grants {
		if l.Grants[i].Address == grant.Address {
			l.Grants[i] = grant
			return
		}
	}
	l.Grants = append(l.Grants, grant)
}
