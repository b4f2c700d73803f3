package judgeconn

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/srujandivakar/DCode/common/config"
	"github.com/srujandivakar/DCode/common/connectors"
	"github.com/srujandivakar/DCode/lib/connector"
)

const pollFields = "token,stdout,stderr,compile_output,status,time,memory"

// Client is the judge abstraction the orchestrator depends on. A single
// round-trip each; completion is the poller's concern.
type Client interface {
	// SubmitBatch queues all jobs and returns their tokens in job order.
	SubmitBatch(ctx context.Context, jobs []Job) ([]Token, error)
	// PollOnce fetches the current status of every token.
	PollOnce(ctx context.Context, tokens []Token) (map[Token]CaseStatus, error)
}

type Connector struct {
	connection *connectors.ConnectorBase
}

func NewConnector(config config.JudgeConfig) *Connector {
	c := &Connector{connectors.NewConnectorBase(config.Address)}
	if config.AuthToken != "" {
		c.connection.SetHeader("X-Auth-Token", config.AuthToken)
	}
	return c
}

func (c *Connector) SubmitBatch(ctx context.Context, jobs []Job) ([]Token, error) {
	r := c.connection.R()
	r.SetContext(ctx)
	r.SetQueryParams(map[string]string{
		"base64_encoded": "false",
		"wait":           "false",
	})
	r.SetBody(&batchSubmitRequest{Submissions: jobs})

	resp, err := connector.Receive[[]submitResponse](r, "/submissions/batch", resty.MethodPost)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(*resp))
	for _, s := range *resp {
		tokens = append(tokens, s.Token)
	}
	return tokens, nil
}

func (c *Connector) PollOnce(ctx context.Context, tokens []Token) (map[Token]CaseStatus, error) {
	r := c.connection.R()
	r.SetContext(ctx)
	r.SetQueryParams(map[string]string{
		"tokens":         joinTokens(tokens),
		"base64_encoded": "false",
		"fields":         pollFields,
	})

	resp, err := connector.Receive[batchPollResponse](r, "/submissions/batch", resty.MethodGet)
	if err != nil {
		return nil, err
	}

	statuses := make(map[Token]CaseStatus, len(resp.Submissions))
	for _, s := range resp.Submissions {
		statuses[s.Token] = s
	}
	return statuses, nil
}

func joinTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}
