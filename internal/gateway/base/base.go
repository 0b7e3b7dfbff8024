package base

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"usercenter/pkg/client"
	"usercenter/pkg/code"
	jsonx "usercenter/pkg/json"
)

// Response is the {code, message, result} envelope every backend answers with
type Response struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Result  *json.RawMessage `json:"result,omitempty"`
}

// Parser unwraps the envelope, a code other than 200 is returned as its ErrorCode
type Parser struct{}

var _ client.Response = Parser{}

func (p Parser) Parse(resp *http.Response, result interface{}) error {
	if !client.Successful(resp.StatusCode) {
		return errors.WithStack(code.From(resp.StatusCode, resp.Body))
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	var response Response
	if err := jsonx.DecodeUseNumber(resp.Body, &response); err != nil {
		return errors.WithStack(code.ErrParseContent.WithResult(err.Error()))
	}
	if response.Code != "200" {
		err := code.Froze(response.Code, response.Message)
		if response.Result != nil {
			err = err.WithResult(string(*response.Result))
		}
		return errors.WithStack(err)
	}
	if result == nil {
		return nil
	}
	if response.Result == nil {
		return errors.WithStack(code.ErrParseContent.WithResult("result is nil"))
	}
	if err := jsonx.Unmarshal(*response.Result, result); err != nil {
		return errors.WithStack(code.ErrParseContent.WithResult(err.Error()))
	}
	return nil
}
