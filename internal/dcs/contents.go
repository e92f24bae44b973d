package dcs

// FileContent is the DCS contents API response for a file. The payload in
// Content is usually base64; Encoding says so. Callers decode it themselves —
// the client hands back the response as received.
type FileContent struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	Encoding    string `json:"encoding"`
	Content     string `json:"content"`
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
	Type        string `json:"type"`
}

// GetContents fetches a file via the contents API.
func (c *Client) GetContents(owner, repo, path string) (*FileContent, error) {
	var fc FileContent
	if err := c.doJSON(c.url("repos", owner, repo, "contents", path), &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}
