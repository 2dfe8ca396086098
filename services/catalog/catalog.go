package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	apiHostFlag   = "catalog-api-host"
	apiPortFlag   = "catalog-api-port"
	apiSecureFlag = "catalog-api-secure"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   apiHostFlag,
			Usage:  "catalog api host",
			Value:  "localhost",
			EnvVar: "CATALOG_API_HOST",
		},
		cli.IntFlag{
			Name:   apiPortFlag,
			Usage:  "catalog api port",
			Value:  8081,
			EnvVar: "CATALOG_API_PORT",
		},
		cli.BoolFlag{
			Name:   apiSecureFlag,
			Usage:  "catalog api secure (https)",
			EnvVar: "CATALOG_API_SECURE",
		},
	)
}

// ConnectionFailureMessage is surfaced when the catalog never produced a
// response or produced one without a usable error message.
const ConnectionFailureMessage = "failed to reach catalog service"

// RemoteError is the uniform failure of a catalog exchange. Status is 0
// when the request never got a response.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("catalog responded with %v: %v", e.Status, e.Message)
}

// Api issues plain request/response exchanges against the catalog
// service. No batching, no retries.
type Api struct {
	url string
	cl  *http.Client
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(apiHostFlag)
	port := c.Int(apiPortFlag)
	protocol := "http"
	if c.Bool(apiSecureFlag) {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	log.Infof("catalog api endpoint %v", u)
	return &Api{
		url: u,
		cl:  cl,
	}
}

// NewWithURL is used by tests to point the client at a local stub.
func NewWithURL(u string, cl *http.Client) *Api {
	return &Api{
		url: u,
		cl:  cl,
	}
}

func (api *Api) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, api.url+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return &RemoteError{Message: ConnectionFailureMessage}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return remoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}
	return nil
}

// remoteError prefers the message the server put in the body.
func remoteError(resp *http.Response) *RemoteError {
	re := &RemoteError{
		Status:  resp.StatusCode,
		Message: ConnectionFailureMessage,
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		re.Message = body.Message
	}
	return re
}
