package xenmobile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/xenbackup/xenbackup/log"
	"github.com/xenbackup/xenbackup/types"
	"github.com/xenbackup/xenbackup/utils"
)

// API endpoint paths on the XenMobile server
const (
	loginPath             = "/xenmobile/api/v1/authentication/login"
	serverPropertiesPath  = "/xenmobile/api/v1/serverproperties"
	clientPropertiesPath  = "/xenmobile/api/v1/clientproperties"
	applicationFilterPath = "/xenmobile/api/v1/application/filter"
	applicationPath       = "/xenmobile/api/v1/application"
)

// BaseURL returns the API root for a XenMobile host. A host carrying an
// explicit scheme is used verbatim; otherwise HTTPS on the given port is
// assumed. Certificate validation is left to the transport, which is what
// rejects plain IP addresses and untrusted certificates.
func BaseURL(host string, port int) string {
	if strings.Contains(host, "://") {
		return strings.TrimRight(host, "/")
	}
	return fmt.Sprintf("https://%s:%d", host, port)
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"auth_token"`
}

// Authenticate exchanges credentials for a bearer token and returns the
// session all fetchers run under. Any transport or HTTP failure, and any
// response without a token, is an AuthenticationError.
func Authenticate(host string, port int, username, password string) (*types.Session, error) {
	body, err := json.Marshal(loginRequest{Login: username, Password: password})
	if err != nil {
		return nil, &AuthenticationError{Host: host, Err: errors.Wrap(err, "marshaling login request")}
	}

	log.Debugf("authenticating against %s as %s", host, username)

	req, err := http.NewRequest("POST", BaseURL(host, port)+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, &AuthenticationError{Host: host, Err: errors.Wrap(err, "creating login request")}
	}
	req.Header.Set("Content-Type", "application/json")

	client := utils.NewHTTPClient(utils.DefaultRequestTimeout)
	resp, err := client.Do(req)
	if err != nil {
		return nil, &AuthenticationError{Host: host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &AuthenticationError{
			Host: host,
			Err:  errors.Errorf("login returned unexpected status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &AuthenticationError{Host: host, Err: errors.Wrap(err, "decoding login response")}
	}
	if result.AuthToken == "" {
		return nil, &AuthenticationError{Host: host, Err: ErrMalformedResponse}
	}

	return &types.Session{Host: host, Port: port, AuthToken: result.AuthToken}, nil
}

// Client is an authenticated client for the XenMobile REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *utils.HTTPClient
}

// NewClient builds a client from an authenticated session. The session is
// read-only; nothing here mutates it.
func NewClient(session *types.Session) *Client {
	return &Client{
		baseURL:    BaseURL(session.Host, session.Port),
		token:      session.AuthToken,
		httpClient: utils.NewHTTPClient(utils.DefaultRequestTimeout),
	}
}

// doRequest executes an authenticated request against the XenMobile API
// and decodes the JSON response into out
func (c *Client) doRequest(method, urlPath string, body []byte, out interface{}) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "parsing server URL")
	}
	endpoint.Path = path.Join(endpoint.Path, urlPath)

	log.Debugf("XenMobile %s %s", method, urlPath)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, endpoint.String(), bodyReader)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}

	req.Header.Set("auth_token", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, urlPath)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.Errorf("%s %s returned unexpected status %d: %s", method, urlPath, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}

	return nil
}
