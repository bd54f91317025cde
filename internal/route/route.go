package route

import (
	"time"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/author"
	"github.com/SergSukh/api-yamdb-33-all/internal/category"
	"github.com/SergSukh/api-yamdb-33-all/internal/comment"
	"github.com/SergSukh/api-yamdb-33-all/internal/genre"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/rating"
	"github.com/SergSukh/api-yamdb-33-all/internal/review"
	"github.com/SergSukh/api-yamdb-33-all/internal/signup"
	"github.com/SergSukh/api-yamdb-33-all/internal/title"
	"github.com/SergSukh/api-yamdb-33-all/internal/token"
	"github.com/SergSukh/api-yamdb-33-all/internal/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Deps collaborators shared by every handler. Redis may be nil.
type Deps struct {
	DB     *gorm.DB
	Redis  *database.RedisClient
	Mailer pkg.Mailer
}

func initRoute(r *gin.Engine, conf *config.AppConfig, deps Deps) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := user.NewUserService(deps.DB, deps.Mailer, user.Options{
		MailFrom:   conf.Mail.From,
		BcryptCost: conf.Signup.BcryptCost,
	})
	titles := title.NewTitleService(deps.DB, rating.NewAggregator(rating.NewRepository(deps.DB)))
	reviewRepo := review.NewReviewRepository(deps.DB)
	cooldown := time.Duration(conf.Signup.CodeCooldown) * time.Second

	apiV1 := r.Group("/api/v1")
	apiV1.Use(middleware.OptionalAuth(users.Repository()))
	{
		authGroup := apiV1.Group("/auth")
		signup.RegisterRoutes(authGroup, signup.NewSignupService(users, deps.Redis, cooldown))
		token.RegisterRoutes(authGroup, token.NewTokenService(users.Repository()))

		user.RegisterRoutes(apiV1, users)
		category.RegisterRoutes(apiV1, category.NewCategoryService(deps.DB))
		genre.RegisterRoutes(apiV1, genre.NewGenreService(deps.DB))
		author.RegisterRoutes(apiV1, author.NewAuthorService(deps.DB))
		title.RegisterRoutes(apiV1, titles)
		review.RegisterRoutes(apiV1, review.NewReviewService(reviewRepo, titles.Repository()))
		comment.RegisterRoutes(apiV1, comment.NewCommentService(comment.NewCommentRepository(deps.DB), reviewRepo))
	}
}

// SetupRouter builds the HTTP engine for conf. The gin mode is global and
// must be set by the caller.
func SetupRouter(conf *config.AppConfig, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: conf.Cors.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, conf, deps)

	return r
}
