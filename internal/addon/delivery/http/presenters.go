package http

import (
	"parentsguide-srv/internal/addon"
	"parentsguide-srv/internal/advisory"
)

type resourceReq struct {
	Type string
	ID   string
}

func (r resourceReq) validate() error {
	if _, err := advisory.ParseKind(r.Type); err != nil {
		return errWrongBody
	}
	if r.ID == "" {
		return errWrongBody
	}
	return nil
}

type catalogReq struct {
	Type  string
	ID    string
	Query string
}

func (r catalogReq) toInput() addon.CatalogInput {
	return addon.CatalogInput{Type: r.Type, ID: r.ID, Query: r.Query}
}

type statusResp struct {
	Status string `json:"status"`
}

type manifestResp struct {
	ID          string                 `json:"id"`
	Version     string                 `json:"version"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Catalogs    []manifestCatalogResp  `json:"catalogs"`
	Types       []string               `json:"types"`
	Resources   []manifestResourceResp `json:"resources"`
}

type manifestCatalogResp struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type manifestResourceResp struct {
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	IDPrefixes []string `json:"idPrefixes"`
}

func (h *handler) newManifestResp(m addon.Manifest) manifestResp {
	resp := manifestResp{
		ID:          m.ID,
		Version:     m.Version,
		Name:        m.Name,
		Description: m.Description,
		Types:       m.Types,
		Catalogs:    make([]manifestCatalogResp, 0, len(m.Catalogs)),
		Resources:   make([]manifestResourceResp, 0, len(m.Resources)),
	}
	for _, c := range m.Catalogs {
		resp.Catalogs = append(resp.Catalogs, manifestCatalogResp{Type: c.Type, ID: c.ID, Name: c.Name})
	}
	for _, r := range m.Resources {
		resp.Resources = append(resp.Resources, manifestResourceResp{Name: r.Name, Types: r.Types, IDPrefixes: r.IDPrefixes})
	}
	return resp
}

type metaResp struct {
	Meta metaItemResp `json:"meta"`
}

type metaItemResp struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AgeRating       int    `json:"ageRating"`
	AgeRatingReason string `json:"ageRatingReason"`
}

func (h *handler) newMetaResp(o addon.MetaOutput) metaResp {
	return metaResp{Meta: metaItemResp{
		ID:              o.ID,
		Type:            o.Type,
		Name:            o.Name,
		Description:     o.Description,
		AgeRating:       o.AgeRating,
		AgeRatingReason: o.Reason,
	}}
}

type streamsResp struct {
	Streams []streamResp `json:"streams"`
}

type streamResp struct {
	Name        string `json:"name"`
	ExternalURL string `json:"externalUrl"`
}

func (h *handler) newStreamsResp(o addon.StreamOutput) streamsResp {
	resp := streamsResp{Streams: make([]streamResp, 0, len(o.Streams))}
	for _, s := range o.Streams {
		resp.Streams = append(resp.Streams, streamResp{Name: s.Name, ExternalURL: s.ExternalURL})
	}
	return resp
}

type catalogResp struct {
	Metas []catalogMetaResp `json:"metas"`
}

type catalogMetaResp struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	AgeRating int    `json:"ageRating"`
}

func (h *handler) newCatalogResp(o addon.CatalogOutput) catalogResp {
	resp := catalogResp{Metas: make([]catalogMetaResp, 0, len(o.Metas))}
	for _, m := range o.Metas {
		resp.Metas = append(resp.Metas, catalogMetaResp{ID: m.ID, Type: m.Type, Name: m.Name, AgeRating: m.AgeRating})
	}
	return resp
}

type blockedResp struct {
	Error      string `json:"error"`
	AgeRating  *int   `json:"age_rating"`
	AllowedAge int    `json:"allowed_age"`
}

type selfTestResp struct {
	Status        string      `json:"status"`
	AllowedAge    int         `json:"allowed_age"`
	Tests         []checkResp `json:"tests"`
	OverallStatus string      `json:"overall_status"`
}

type checkResp struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Status   string `json:"status"`
	Details  string `json:"details,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *handler) newSelfTestResp(r addon.SelfTestReport) selfTestResp {
	resp := selfTestResp{
		Status:        r.Status,
		AllowedAge:    r.AllowedAge,
		OverallStatus: r.OverallStatus,
		Tests:         make([]checkResp, 0, len(r.Checks)),
	}
	for _, c := range r.Checks {
		resp.Tests = append(resp.Tests, checkResp{
			Name:     c.Name,
			Endpoint: c.Endpoint,
			Status:   c.Status,
			Details:  c.Details,
			Error:    c.Error,
		})
	}
	return resp
}

type titleTestResp struct {
	Status string        `json:"status"`
	Data   titleDataResp `json:"data"`
}

type titleDataResp struct {
	Title         string `json:"title"`
	AgeRating     int    `json:"age_rating"`
	RatingReasons string `json:"rating_reasons"`
	IsAllowed     bool   `json:"is_allowed"`
}

func (h *handler) newTitleTestResp(r addon.TitleReport) titleTestResp {
	return titleTestResp{
		Status: "success",
		Data: titleDataResp{
			Title:         r.Result.Title,
			AgeRating:     r.Result.AgeRating,
			RatingReasons: r.Result.ReasonText(),
			IsAllowed:     r.IsAllowed,
		},
	}
}
