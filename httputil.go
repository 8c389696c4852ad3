package loancalc

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/loancalc/date"
)

// dayCache is an http.RoundTripper that stores successful responses in the
// system temp directory. The cache key includes the current date, so entries
// expire overnight. Reference rates are published once a day, one fetch per
// day is enough.
type dayCache struct {
	next http.RoundTripper
}

func (c dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := sha1.Sum([]byte(date.Today().String() + " " + req.Method + " " + req.URL.String()))
	file := filepath.Join(os.TempDir(), fmt.Sprintf("lcc-%x", key))

	if content, err := os.ReadFile(file); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%s %s %s", req.Method, req.URL.Host, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	// DumpResponse leaves resp.Body readable for the caller.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	if err := os.WriteFile(file, content, 0600); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// cachedClient returns an HTTP client whose responses expire daily.
func cachedClient() *http.Client {
	return &http.Client{Transport: dayCache{http.DefaultTransport}}
}

// getJSON performs an HTTP GET and decodes the JSON response body into data.
func getJSON(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %s/%s: %s", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
