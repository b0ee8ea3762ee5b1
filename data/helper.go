package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
)

// helper function to get the http request and decode the json body into target
func getJSON[DataType fredObservationsResponse | fredSeriesResponse](ctx context.Context, client *http.Client, url string, target DataType) (result DataType, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return target, err
	}
	req.Header.Add("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return target, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var fe fredErrorResponse
		if json.Unmarshal(body, &fe) == nil && fe.ErrorMessage != "" {
			return target, &HTTPError{StatusCode: resp.StatusCode, Msg: fe.ErrorMessage}
		}
		return target, &HTTPError{StatusCode: resp.StatusCode, Msg: http.StatusText(resp.StatusCode)}
	}

	err = json.NewDecoder(resp.Body).Decode(&target)
	if err != nil {
		return target, fmt.Errorf("decode response: %w", err)
	}
	return target, nil
}

// HTTPError is a non-200 response from a data provider.
type HTTPError struct {
	StatusCode int
	Msg        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Msg)
}

// helper function to read an api key from the environment, loading .env if present
func lookupKey(name string) (string, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	return os.Getenv(name), nil
}

// progress bar initialization
func progressBar(length int, description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
