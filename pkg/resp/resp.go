package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero/mem"

	"usercenter/pkg/ptf"
	"usercenter/pkg/resp/csv"
	"usercenter/pkg/resp/xlsx"
)

const DefaultMessage = "请求成功"

// Success responds 200 with the default message, 204 without data
func Success(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, WrapResult(DefaultMessage, data[0]))
}

// SuccessWithMessage responds 200 with the message shown to the operator
func SuccessWithMessage(c *gin.Context, message string, result interface{}) {
	c.JSON(http.StatusOK, WrapResult(message, result))
}

// WrapResult 包裹返回结果
func WrapResult(message string, result interface{}) interface{} {
	return &response{
		Code:    "200",
		Message: message,
		Result:  result,
	}
}

// SuccessWithFile renders list as an attachment, xlsx when the client accepts
// a spreadsheet and csv otherwise. name is the file stem and the sheet name.
func SuccessWithFile(c *gin.Context, name string, list interface{}, opts ...ptf.Option) {
	handler, contentType, ext := ptf.Handler(csv.Handler), csv.ContentType, "csv"
	if accept := c.GetHeader("Accept"); strings.Contains(accept, "spreadsheetml") ||
		strings.Contains(accept, "application/vnd.ms-excel") || c.Query("format") == "xlsx" {
		handler, contentType, ext = xlsx.Handler, xlsx.ContentType, "xlsx"
	}
	file := mem.NewFileHandle(mem.CreateFile(name))
	defer file.Close()
	if err := ptf.NewMarshal(handler, append(opts, ptf.Sheet(name))...).Encode(file, list); err != nil {
		Error(c, err)
		return
	}
	c.Render(http.StatusOK, &fileRender{
		file:        file,
		request:     c.Request,
		contentType: contentType,
		fileName:    fmt.Sprintf("%s_%s.%s", name, time.Now().Format("20060102150405"), ext),
	})
}

type fileRender struct {
	file        *mem.File
	request     *http.Request
	contentType string
	fileName    string
}

func (f *fileRender) Render(w http.ResponseWriter) error {
	f.WriteContentType(w)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(f.fileName)))
	http.ServeContent(w, f.request, f.fileName, f.file.Info().ModTime(), f.file)
	return nil
}

func (f *fileRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", f.contentType)
}
