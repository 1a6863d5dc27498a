package party

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"partysearch/e2e/steps/common"
)

// TestContext is the part of the e2e context the party steps need.
type TestContext interface {
	common.TestContext
	POST(path string, body any, headers map[string]string) error
	DELETE(path string, headers map[string]string) error
	AdminHeaders() map[string]string
}

// RegisterSteps registers search and onboarding step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &partySteps{tc: tc}

	ctx.Step(`^the party store is empty$`, steps.storeIsEmpty)
	ctx.Step(`^the party store contains:$`, steps.storeContains)
	ctx.Step(`^the party store contains (\d+) numbered parties$`, steps.storeContainsNumbered)

	ctx.Step(`^I search for "([^"]*)"$`, steps.searchFor)
	ctx.Step(`^I search with parameters:$`, steps.searchWithParameters)
	ctx.Step(`^I onboard a party with:$`, steps.onboardWith)
	ctx.Step(`^I onboard the JSON:$`, steps.onboardJSON)

	ctx.Step(`^the result names should be "([^"]*)"$`, steps.resultNamesShouldBe)
	ctx.Step(`^the result should be empty$`, steps.resultShouldBeEmpty)
	ctx.Step(`^the pagination should show (\d+) results over (\d+) pages?$`, steps.paginationShouldShow)
	ctx.Step(`^the pagination should be page (-?\d+) of size (-?\d+)$`, steps.paginationPageShouldBe)
	ctx.Step(`^the search message should be "([^"]*)"$`, steps.messageShouldBe)
	ctx.Step(`^the onboarded party id should match "([^"]*)"$`, steps.onboardedIDShouldMatch)
	ctx.Step(`^the party named "([^"]*)" should have match score "([^"]*)"$`, steps.matchScoreShouldBe)
	ctx.Step(`^searching for "([^"]*)" should return (\d+) results?$`, steps.searchShouldReturn)
}

type partySteps struct {
	tc TestContext
}

type searchBody struct {
	Data []struct {
		PartyID    string `json:"partyId"`
		Name       string `json:"name"`
		MatchScore string `json:"matchScore"`
	} `json:"data"`
	Pagination struct {
		TotalResults int `json:"totalResults"`
		TotalPages   int `json:"totalPages"`
		CurrentPage  int `json:"currentPage"`
		PageSize     int `json:"pageSize"`
	} `json:"pagination"`
	Message string `json:"message"`
}

func (s *partySteps) storeIsEmpty(_ context.Context) error {
	if err := s.tc.DELETE("/admin/parties", s.tc.AdminHeaders()); err != nil {
		return err
	}
	return s.expectStatus(204)
}

func (s *partySteps) storeContains(ctx context.Context, table *godog.Table) error {
	if err := s.storeIsEmpty(ctx); err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("table needs a header row and at least one party")
	}

	header := table.Rows[0].Cells
	parties := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		p := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			p[header[i].Value] = cell.Value
		}
		parties = append(parties, p)
	}
	return s.bulkLoad(parties)
}

func (s *partySteps) storeContainsNumbered(ctx context.Context, n int) error {
	if err := s.storeIsEmpty(ctx); err != nil {
		return err
	}
	parties := make([]map[string]string, 0, n)
	for i := 1; i <= n; i++ {
		parties = append(parties, map[string]string{
			"partyId":         fmt.Sprintf("P-%08d", i),
			"name":            fmt.Sprintf("Party %02d", i),
			"type":            "Individual",
			"sanctionsStatus": "Approved",
		})
	}
	return s.bulkLoad(parties)
}

func (s *partySteps) bulkLoad(parties []map[string]string) error {
	if err := s.tc.POST("/admin/parties/bulk", parties, s.tc.AdminHeaders()); err != nil {
		return err
	}
	return s.expectStatus(204)
}

func (s *partySteps) searchFor(_ context.Context, term string) error {
	return s.tc.GET("/api/parties?query="+url.QueryEscape(term), nil)
}

func (s *partySteps) searchWithParameters(_ context.Context, table *godog.Table) error {
	values := url.Values{}
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected name | value rows")
		}
		values.Set(row.Cells[0].Value, row.Cells[1].Value)
	}
	return s.tc.GET("/api/parties?"+values.Encode(), nil)
}

func (s *partySteps) onboardWith(_ context.Context, table *godog.Table) error {
	body := make(map[string]string, len(table.Rows))
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected field | value rows")
		}
		body[row.Cells[0].Value] = row.Cells[1].Value
	}
	return s.tc.POST("/api/parties", body, nil)
}

func (s *partySteps) onboardJSON(_ context.Context, doc *godog.DocString) error {
	return s.tc.POST("/api/parties", doc.Content, nil)
}

func (s *partySteps) resultNamesShouldBe(_ context.Context, expected string) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(body.Data))
	for _, p := range body.Data {
		names = append(names, p.Name)
	}

	want := strings.Split(expected, ",")
	for i := range want {
		want[i] = strings.TrimSpace(want[i])
	}
	if strings.Join(names, "|") != strings.Join(want, "|") {
		return fmt.Errorf("expected names %v but got %v", want, names)
	}
	return nil
}

func (s *partySteps) resultShouldBeEmpty(_ context.Context) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	if len(body.Data) != 0 {
		return fmt.Errorf("expected no parties but got %d", len(body.Data))
	}
	return nil
}

func (s *partySteps) paginationShouldShow(_ context.Context, total, pages int) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	if body.Pagination.TotalResults != total || body.Pagination.TotalPages != pages {
		return fmt.Errorf("expected %d results over %d pages but got %d over %d",
			total, pages, body.Pagination.TotalResults, body.Pagination.TotalPages)
	}
	return nil
}

func (s *partySteps) paginationPageShouldBe(_ context.Context, page, size int) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	if body.Pagination.CurrentPage != page || body.Pagination.PageSize != size {
		return fmt.Errorf("expected page %d of size %d but got page %d of size %d",
			page, size, body.Pagination.CurrentPage, body.Pagination.PageSize)
	}
	return nil
}

func (s *partySteps) messageShouldBe(_ context.Context, expected string) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	if body.Message != expected {
		return fmt.Errorf("expected message %q but got %q", expected, body.Message)
	}
	return nil
}

func (s *partySteps) onboardedIDShouldMatch(_ context.Context, pattern string) error {
	var body struct {
		PartyID string `json:"partyId"`
	}
	if err := common.DecodeBody(s.tc, &body); err != nil {
		return err
	}
	if !matchesPattern(body.PartyID, pattern) {
		return fmt.Errorf("party id %q does not match %q", body.PartyID, pattern)
	}
	location := s.tc.GetLastResponseHeader("Location")
	if want := "/api/parties?query=" + url.QueryEscape(body.PartyID); location != want {
		return fmt.Errorf("expected Location %q but got %q", want, location)
	}
	return nil
}

func (s *partySteps) matchScoreShouldBe(_ context.Context, name, expected string) error {
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	for _, p := range body.Data {
		if p.Name == name {
			if p.MatchScore != expected {
				return fmt.Errorf("party %s: expected match score %q but got %q", name, expected, p.MatchScore)
			}
			return nil
		}
	}
	return fmt.Errorf("party %s not in results", name)
}

func (s *partySteps) searchShouldReturn(ctx context.Context, term string, count int) error {
	if err := s.searchFor(ctx, term); err != nil {
		return err
	}
	body, err := s.decodeSearch()
	if err != nil {
		return err
	}
	if body.Pagination.TotalResults != count {
		return fmt.Errorf("expected %d results for %q but got %d", count, term, body.Pagination.TotalResults)
	}
	return nil
}

func (s *partySteps) decodeSearch() (*searchBody, error) {
	var body searchBody
	if err := common.DecodeBody(s.tc, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (s *partySteps) expectStatus(want int) error {
	if got := s.tc.GetLastResponseStatus(); got != want {
		return fmt.Errorf("expected status %d but got %d: %s", want, got, s.tc.GetLastResponseBody())
	}
	return nil
}

// matchesPattern compares an id against a mask where '#' stands for any digit.
func matchesPattern(id, pattern string) bool {
	if len(id) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '#' {
			if _, err := strconv.Atoi(string(id[i])); err != nil {
				return false
			}
			continue
		}
		if id[i] != pattern[i] {
			return false
		}
	}
	return true
}
