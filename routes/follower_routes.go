package routes

import (
	"github.com/eventmate/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupFollowerRoutes(protected *gin.RouterGroup, followerController *controllers.FollowerController) {
	follower := protected.Group("/follower")
	{
		follower.POST("", followerController.Create)
		follower.PATCH("/:userId", followerController.Toggle)
		follower.DELETE("/:id", followerController.Remove)

		follower.GET("/status/:userId", followerController.FollowStatus)
		follower.GET("/count", followerController.FollowCount)
		follower.GET("/follow-list", followerController.FollowingList)
		follower.GET("/followers", followerController.FollowersList)
		follower.GET("/check-self/:userId", followerController.CheckIsSelf)

		// Public profile views of another user's graph
		follower.GET("/user/:userId/stats", followerController.UserFollowStats)
		follower.GET("/user/:userId/following", followerController.UserFollowing)
		follower.GET("/user/:userId/followers", followerController.UserFollowers)

		follower.GET("/suggestions", followerController.Suggestions)
		follower.GET("/search", followerController.Search)
	}
}
