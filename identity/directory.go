package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
)

// Directory is the narrow boundary to the external user directory: which
// profiles belong to which identity-provider account. Token claims act as a
// first-pass cache of this list; the directory is authoritative.
type Directory interface {
	IsMember(ctx context.Context, accountID string, profileID uint) (bool, error)
	AddMember(ctx context.Context, accountID string, profileID uint) error
	RemoveMember(ctx context.Context, accountID string, profileID uint) error
}

// HTTPDirectory talks to the directory's admin API with a client-credentials
// machine token.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
}

type HTTPDirectoryConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

func NewHTTPDirectory(cfg HTTPDirectoryConfig) *HTTPDirectory {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	return &HTTPDirectory{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cc.Client(context.Background()),
	}
}

type profileListResponse struct {
	Profiles []uint `json:"profiles"`
}

func (d *HTTPDirectory) IsMember(ctx context.Context, accountID string, profileID uint) (bool, error) {
	url := fmt.Sprintf("%s/accounts/%s/profiles", d.baseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("directory lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("directory lookup returned status %d", resp.StatusCode)
	}

	var list profileListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return false, fmt.Errorf("failed to decode profile list: %w", err)
	}
	for _, id := range list.Profiles {
		if id == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (d *HTTPDirectory) AddMember(ctx context.Context, accountID string, profileID uint) error {
	url := fmt.Sprintf("%s/accounts/%s/profiles", d.baseURL, accountID)
	body := strings.NewReader(fmt.Sprintf(`{"profileId":%d}`, profileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("directory add failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("directory add returned status %d", resp.StatusCode)
	}
	return nil
}

func (d *HTTPDirectory) RemoveMember(ctx context.Context, accountID string, profileID uint) error {
	url := fmt.Sprintf("%s/accounts/%s/profiles/%d", d.baseURL, accountID, profileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("directory remove failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("directory remove returned status %d", resp.StatusCode)
	}
	return nil
}
