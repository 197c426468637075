package testing

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/onsi/gomega"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func (r *RequestModifiers) Add(mods ...RequestModifier) {
	*r = append(*r, mods...)
}

type UploadFile struct {
	FieldName string
	FileName  string
	Contents  []byte
}

type RequestFactory struct {
	Method     string
	Target     string
	FormFields map[string]string
	Files      []UploadFile
	Mods       RequestModifiers
}

func (r RequestFactory) isMultipart() bool {
	return len(r.FormFields) > 0 || len(r.Files) > 0
}

func (r RequestFactory) multipartBody() (io.Reader, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, val := range r.FormFields {
		err := writer.WriteField(key, val)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
	}

	for _, file := range r.Files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())

		_, err = part.Write(file.Contents)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
	}

	err := writer.Close()
	gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())

	return buf, writer.FormDataContentType()
}

func (r RequestFactory) make(reqMaker func(string, string, io.Reader) *http.Request) *http.Request {
	var body io.Reader
	contentType := ""

	if r.isMultipart() {
		body, contentType = r.multipartBody()
	}

	request := reqMaker(r.Method, r.Target, body)

	if contentType != "" {
		request.Header.Set(echo.HeaderContentType, contentType)
	}

	for _, mod := range r.Mods {
		mod(request)
	}

	return request
}

func (r RequestFactory) MakeFake() *http.Request {
	return r.make(httptest.NewRequest)
}

func (r RequestFactory) Do() (*http.Response, error) {
	makeRealRequest := func(method string, target string, body io.Reader) *http.Request {
		return ExpectSuccess(http.NewRequest(method, target, body))
	}

	req := r.make(makeRealRequest)
	return http.DefaultClient.Do(req)
}
