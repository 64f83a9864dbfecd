package xenmobile

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xenbackup/xenbackup/types"
)

// Resource names used in fetch errors
const (
	ResourceServerProperties = "serverproperties"
	ResourceClientProperties = "clientproperties"
	ResourceApplications     = "applications"
)

type serverPropertiesResponse struct {
	AllEwProperties []types.ServerProperty `json:"allEwProperties"`
}

type clientPropertiesResponse struct {
	AllClientProperties []types.ClientProperty `json:"allClientProperties"`
}

type applicationFilterRequest struct {
	Start                 int    `json:"start"`
	ApplicationSortColumn string `json:"applicationSortColumn"`
	SortOrder             string `json:"sortOrder"`
}

type applicationFilterResponse struct {
	ApplicationListData *struct {
		AppList []types.ApplicationSummary `json:"applist"`
	} `json:"applicationListData"`
}

type applicationDetailResponse struct {
	Container *types.ApplicationDetail `json:"container"`
}

// GetServerProperties fetches the full server property collection,
// unfiltered, in server order.
func (c *Client) GetServerProperties() ([]types.ServerProperty, error) {
	var result serverPropertiesResponse
	if err := c.doRequest("GET", serverPropertiesPath, nil, &result); err != nil {
		return nil, &FetchError{Resource: ResourceServerProperties, Err: err}
	}
	if result.AllEwProperties == nil {
		return nil, &FetchError{Resource: ResourceServerProperties, Err: ErrMalformedResponse}
	}
	return result.AllEwProperties, nil
}

// GetClientProperties fetches the client property collection in server
// order.
func (c *Client) GetClientProperties() ([]types.ClientProperty, error) {
	var result clientPropertiesResponse
	if err := c.doRequest("GET", clientPropertiesPath, nil, &result); err != nil {
		return nil, &FetchError{Resource: ResourceClientProperties, Err: err}
	}
	if result.AllClientProperties == nil {
		return nil, &FetchError{Resource: ResourceClientProperties, Err: ErrMalformedResponse}
	}
	return result.AllClientProperties, nil
}

// FilterApplications lists every application, sorted by name ascending.
// Only the first page is requested; the server's own paging is not
// followed. Large deployments that page the application list will be
// truncated to the first page.
func (c *Client) FilterApplications() ([]types.ApplicationSummary, error) {
	body, err := json.Marshal(applicationFilterRequest{
		Start:                 0,
		ApplicationSortColumn: "name",
		SortOrder:             "ASC",
	})
	if err != nil {
		return nil, &FetchError{Resource: ResourceApplications, Err: errors.Wrap(err, "marshaling filter request")}
	}

	var result applicationFilterResponse
	if err := c.doRequest("POST", applicationFilterPath, body, &result); err != nil {
		return nil, &FetchError{Resource: ResourceApplications, Err: err}
	}
	if result.ApplicationListData == nil || result.ApplicationListData.AppList == nil {
		return nil, &FetchError{Resource: ResourceApplications, Err: ErrMalformedResponse}
	}
	return result.ApplicationListData.AppList, nil
}

// GetApplication fetches the full application container for a managed
// application by its classification-qualified path.
func (c *Client) GetApplication(classification types.Classification, id int) (*types.ApplicationDetail, error) {
	resource := fmt.Sprintf("application %d", id)
	urlPath := applicationPath + "/" + string(classification) + "/" + strconv.Itoa(id)

	var result applicationDetailResponse
	if err := c.doRequest("GET", urlPath, nil, &result); err != nil {
		return nil, &FetchError{Resource: resource, Err: err}
	}
	if result.Container == nil {
		return nil, &FetchError{Resource: resource, Err: ErrMalformedResponse}
	}
	return result.Container, nil
}
