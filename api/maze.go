package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/store"
)

// ErrTooLarge indicates a requested dimension above the configured maximum.
var ErrTooLarge = errors.New("api: maze dimension exceeds maximum")

// MazeController handles HTTP requests for mazes.
type MazeController struct {
	repo        store.Repository
	maxDim      int
	defaultAlgo generate.Algorithm
	log         *logrus.Logger
}

// NewMazeController creates a MazeController. maxDim caps width and height;
// defaultAlgo is used when a request names no algorithm. A nil logger uses
// logrus.StandardLogger().
func NewMazeController(repo store.Repository, maxDim int, defaultAlgo generate.Algorithm, log *logrus.Logger) *MazeController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MazeController{
		repo:        repo,
		maxDim:      maxDim,
		defaultAlgo: defaultAlgo,
		log:         log,
	}
}

// RegisterPublic registers public routes.
func (c *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.GET("/:id", c.byID)
		mazes.GET("/:id/ascii", c.ascii)
		mazes.GET("/:id/png", c.png)
		mazes.POST("/:id/solve", c.solve)
	}
}

// create handles maze generation.
func (c *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo := c.defaultAlgo
	if request.Algorithm != "" {
		parsed, err := generate.ParseAlgorithm(request.Algorithm)
		if err != nil {
			c.fail(ctx, err)
			return
		}
		algo = parsed
	}
	if request.Width > c.maxDim || request.Height > c.maxDim {
		c.fail(ctx, ErrTooLarge)
		return
	}
	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	g, err := generate.Generate(algo, request.Width, request.Height, generate.WithSeed(seed))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	rec := store.NewRecord(algo, seed, g)
	if err := c.repo.Save(ctx.Request.Context(), rec); err != nil {
		c.fail(ctx, err)
		return
	}

	c.log.WithFields(logrus.Fields{
		"id":        rec.ID,
		"algorithm": algo,
		"width":     rec.Width,
		"height":    rec.Height,
		"seed":      seed,
	}).Info("maze generated")
	ctx.JSON(http.StatusCreated, newMazeResponse(rec))
}

// byID returns a stored maze.
func (c *MazeController) byID(ctx *gin.Context) {
	rec, ok := c.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(rec))
}

// ascii returns the text drawing, with the stored solution if any.
func (c *MazeController) ascii(ctx *gin.Context) {
	rec, ok := c.load(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, render.ASCII(rec.Grid, c.renderOptions(rec)...))
}

// png returns the picture; ?cell=N sets the cell size in pixels.
func (c *MazeController) png(ctx *gin.Context) {
	rec, ok := c.load(ctx)
	if !ok {
		return
	}
	opts := c.renderOptions(rec)
	if raw := ctx.Query("cell"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < render.MinCellSize || n > 64 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "cell must be an integer between 5 and 64"})
			return
		}
		opts = append(opts, render.WithCellSize(n))
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, rec.Grid, opts...); err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// solve runs the solver and stores the path on the record.
func (c *MazeController) solve(ctx *gin.Context) {
	rec, ok := c.load(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	start, end := maze.DefaultEndpoints(rec.Grid)
	if request.Start != nil {
		start = *request.Start
	}
	if request.End != nil {
		end = *request.End
	}

	res, err := solve.Solve(rec.Grid, start, end)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if res.Found {
		if err := c.repo.SaveSolution(ctx.Request.Context(), rec.ID, res.Path); err != nil {
			c.fail(ctx, err)
			return
		}
	}

	c.log.WithFields(logrus.Fields{
		"id":      rec.ID,
		"found":   res.Found,
		"steps":   res.Distance,
		"settled": res.Settled,
	}).Info("maze solved")
	ctx.JSON(http.StatusOK, &SolveResponse{
		Found:   res.Found,
		Steps:   res.Distance,
		Settled: res.Settled,
		Path:    res.Path,
	})
}

// load parses :id and fetches the record, writing the error response itself
// when it fails.
func (c *MazeController) load(ctx *gin.Context) (*store.Record, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}
	rec, err := c.repo.ByID(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err)
		return nil, false
	}
	return rec, true
}

func (c *MazeController) renderOptions(rec *store.Record) []render.Option {
	start, end := maze.DefaultEndpoints(rec.Grid)
	opts := []render.Option{render.WithStart(start), render.WithEnd(end)}
	if len(rec.Solution) > 0 {
		opts = append(opts,
			render.WithStart(rec.Solution[0]),
			render.WithEnd(rec.Solution[len(rec.Solution)-1]),
			render.WithPath(rec.Solution))
	}
	return opts
}

// fail writes err with the status its sentinel maps to.
func (c *MazeController) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		c.log.WithError(err).WithField("path", ctx.Request.URL.Path).Error("request failed")
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, generate.ErrUnknownAlgorithm),
		errors.Is(err, solve.ErrInvalidCoordinate),
		errors.Is(err, ErrTooLarge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
