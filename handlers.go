package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var errPageOutOfRange = errors.New("page out of range")

// existingSession returns the caller's live page-session, if any.
func (a *app) existingSession(c *gin.Context) (*pageSession, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	sess, err := a.sessions.Get(id)
	if err != nil {
		return nil, false
	}
	return sess, true
}

// currentSession resumes the caller's page-session or starts a new one.
// The cookie is re-issued on every use so the browser keeps it as long
// as the server does.
func (a *app) currentSession(c *gin.Context) *pageSession {
	sess, ok := a.existingSession(c)
	if !ok {
		sess = a.sessions.Create()
	}
	a.refreshCookie(c, sess)
	return sess
}

func (a *app) refreshCookie(c *gin.Context, sess *pageSession) {
	c.SetCookie(sessionCookie, sess.id, int(a.cfg.SessionTTL.Seconds()), "/", "", false, true)
}

// showPage renders a full page. A full load starts the filter over at
// ("all", 1), like a reload of the browser tab.
func (a *app) showPage(name, nav string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := a.currentSession(c)

		sess.mu.Lock()
		sess.filter.Reset()
		snap := sess.filter.Snapshot()
		sess.mu.Unlock()

		c.HTML(http.StatusOK, name, gin.H{
			"nav":            nav,
			"aboutMeContent": AboutMe,
			"projects":       snap,
		})
	}
}

func (a *app) selectFilter(c *gin.Context) {
	category, ok := c.GetPostForm("category")
	category = strings.TrimSpace(category)
	if !ok || category == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	sess := a.currentSession(c)
	sess.mu.Lock()
	sess.filter.SetFilter(category)
	snap := sess.filter.Snapshot()
	sess.mu.Unlock()

	a.metrics.ObserveFilter(category, a.catalog.HasCategory(category), snap.FilteredCount)
	if err := a.store.RecordFilterSelection(c.Request.Context(), category, snap.FilteredCount, a.now()); err != nil {
		log.Printf("Error recording filter selection: %v", err)
	}

	a.renderGrid(c, snap)
}

func (a *app) selectPage(c *gin.Context) {
	page, err := strconv.Atoi(strings.TrimSpace(c.PostForm("page")))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	}

	// The grid sends back the category it was rendered for. Another tab
	// sharing the session may have changed the filter since.
	category := strings.TrimSpace(c.PostForm("category"))

	sess := a.currentSession(c)
	sess.mu.Lock()
	if category != "" && category != sess.filter.ActiveCategory() {
		sess.filter.SetFilter(category)
	}
	if page < 1 || page > sess.filter.TotalPages() {
		sess.mu.Unlock()
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errPageOutOfRange.Error()})
		return
	}
	sess.filter.SetPage(page)
	snap := sess.filter.Snapshot()
	sess.mu.Unlock()

	a.metrics.PageSelections.Inc()
	a.renderGrid(c, snap)
}

// projectState reports the session's state. Without a session it
// reports the initial state and allocates nothing.
func (a *app) projectState(c *gin.Context) {
	sess, ok := a.existingSession(c)
	if !ok {
		c.JSON(http.StatusOK, a.catalog.NewFilter().Snapshot())
		return
	}
	a.refreshCookie(c, sess)
	sess.mu.Lock()
	snap := sess.filter.Snapshot()
	sess.mu.Unlock()

	c.JSON(http.StatusOK, snap)
}

// renderGrid answers HTMX with the grid fragment and API clients with JSON.
func (a *app) renderGrid(c *gin.Context, snap ProjectFilterSnapshot) {
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, snap)
	default:
		c.HTML(http.StatusOK, "projects-grid.html", snap)
	}
}
