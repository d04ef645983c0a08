package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/santoscleaning/website-api/internal/entity"
)

const (
	leadsTable   = "leads"
	reviewsTable = "google_reviews"
)

// Client talks to the Supabase PostgREST endpoint with service-role
// authentication. One client is shared across requests.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Insert creates a lead row and returns the identifier Supabase
// assigned (or echoes the one we sent).
func (c *Client) Insert(ctx context.Context, lead *entity.Lead) (string, error) {
	payload := leadRow{
		ID:         lead.ID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Message:    lead.Message,
		SMSConsent: lead.SMSConsent,
		Language:   lead.Language,
		Source:     lead.Source,
		Status:     lead.Status,
	}

	body, err := c.do(ctx, http.MethodPost, c.tableURL(leadsTable, nil), payload, "return=representation")
	if err != nil {
		return "", err
	}

	var rows []leadRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return "", fmt.Errorf("decode insert response: %w", err)
	}
	if len(rows) == 0 {
		return lead.ID, nil
	}
	return rows[0].ID, nil
}

// List returns a page of leads ordered by recency plus the exact total,
// which takes a second count query.
func (c *Client) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, int, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "created_at.desc")
	params.Set("offset", strconv.Itoa(filter.Offset))
	params.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Status != "" {
		params.Set("status", "eq."+filter.Status)
	}

	body, err := c.do(ctx, http.MethodGet, c.tableURL(leadsTable, params), nil, "")
	if err != nil {
		return nil, 0, err
	}

	var rows []leadRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, 0, fmt.Errorf("decode leads: %w", err)
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, row.toEntity())
	}

	total, err := c.countLeads(ctx, filter.Status)
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// countLeads asks for an exact count; PostgREST reports it in the
// Content-Range header ("0-49/123").
func (c *Client) countLeads(ctx context.Context, status string) (int, error) {
	params := url.Values{}
	params.Set("select", "count")
	if status != "" {
		params.Set("status", "eq."+status)
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(leadsTable, params), nil, "count=exact")
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("supabase count leads (status %d)", resp.StatusCode)
	}

	contentRange := resp.Header.Get("Content-Range")
	if idx := strings.LastIndex(contentRange, "/"); idx >= 0 {
		if total, err := strconv.Atoi(contentRange[idx+1:]); err == nil {
			return total, nil
		}
	}
	return 0, nil
}

// Update patches the given fields. Matching zero rows means the lead
// does not exist.
func (c *Client) Update(ctx context.Context, id string, update entity.LeadUpdate) error {
	params := url.Values{}
	params.Set("id", "eq."+id)

	body, err := c.do(ctx, http.MethodPatch, c.tableURL(leadsTable, params), update, "return=representation")
	if err != nil {
		return err
	}
	return errIfNoRows(body)
}

// Delete removes a single lead by identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("id", "eq."+id)

	body, err := c.do(ctx, http.MethodDelete, c.tableURL(leadsTable, params), nil, "return=representation")
	if err != nil {
		return err
	}
	return errIfNoRows(body)
}

// DeleteLeadsBy bulk-deletes every lead whose column equals value and
// returns how many rows went away.
func (c *Client) DeleteLeadsBy(ctx context.Context, column, value string) (int, error) {
	params := url.Values{}
	params.Set(column, "eq."+value)

	body, err := c.do(ctx, http.MethodDelete, c.tableURL(leadsTable, params), nil, "return=representation")
	if err != nil {
		return 0, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("decode delete response: %w", err)
	}
	return len(rows), nil
}

// DeleteDemo removes the known demo/test leads. PostgREST filters take
// one column at a time, so this loops the match lists.
func (c *Client) DeleteDemo(ctx context.Context, matcher entity.DemoLeadMatcher) (int, error) {
	deleted := 0
	for column, values := range map[string][]string{
		"name":   matcher.Names,
		"email":  matcher.Emails,
		"source": matcher.Sources,
	} {
		for _, value := range values {
			count, err := c.DeleteLeadsBy(ctx, column, value)
			if err != nil {
				return deleted, err
			}
			deleted += count
		}
	}
	return deleted, nil
}

// ListReviews fetches the most recent ingested reviews.
func (c *Client) ListReviews(ctx context.Context, limit int) ([]entity.ExternalReview, error) {
	params := url.Values{}
	params.Set("select", "author_name,rating,text,relative_time_description,profile_photo_url,review_time")
	params.Set("order", "review_time.desc")
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, c.tableURL(reviewsTable, params), nil, "")
	if err != nil {
		return nil, err
	}

	var rows []reviewRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]entity.ExternalReview, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toEntity())
	}
	return reviews, nil
}

// ReviewExists checks for a previously ingested review with the same
// derived identifier.
func (c *Client) ReviewExists(ctx context.Context, reviewID string) (bool, error) {
	params := url.Values{}
	params.Set("select", "review_id")
	params.Set("review_id", "eq."+reviewID)
	params.Set("limit", "1")

	body, err := c.do(ctx, http.MethodGet, c.tableURL(reviewsTable, params), nil, "")
	if err != nil {
		return false, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return false, fmt.Errorf("decode review lookup: %w", err)
	}
	return len(rows) > 0, nil
}

// InsertReview stores one ingested review row.
func (c *Client) InsertReview(ctx context.Context, review *entity.ExternalReview) error {
	_, err := c.do(ctx, http.MethodPost, c.tableURL(reviewsTable, nil), review, "return=minimal")
	return err
}

func (c *Client) tableURL(table string, params url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, url string, payload interface{}, prefer string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, prefer)
	return req, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}, prefer string) ([]byte, error) {
	req, err := c.newRequest(ctx, method, url, payload, prefer)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("supabase %s %s (status %d): %s", method, url, resp.StatusCode, string(body))
	}
	return body, nil
}

// setHeaders centralizes the mandatory PostgREST headers.
func (c *Client) setHeaders(req *http.Request, prefer string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
}

func errIfNoRows(body []byte) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(rows) == 0 {
		return entity.ErrNotFound
	}
	return nil
}
