package quotes

// Default is the built-in catalog.
var Default = MustCatalog([]Quote{
	{ID: "1", Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{ID: "2", Text: "Do what you can, with what you have, where you are.", Author: "Theodore Roosevelt"},
	{ID: "3", Text: "Dream big and dare to fail.", Author: "Norman Vaughan"},
	{ID: "4", Text: "It always seems impossible until it is done.", Author: "Nelson Mandela"},
	{ID: "5", Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{ID: "6", Text: "You miss 100% of the shots you do not take.", Author: "Wayne Gretzky"},
	{ID: "7", Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{ID: "8", Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{ID: "9", Text: "If you can dream it, you can do it.", Author: "Walt Disney"},
	{ID: "10", Text: "Perseverance is not a long race; it is many short races one after another.", Author: "Walter Elliot"},
	{ID: "11", Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{ID: "12", Text: "Do not watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{ID: "13", Text: "Small steps in the right direction can turn out to be the biggest step of your life.", Author: "Naeem Callaway"},
	{ID: "14", Text: "Work hard in silence, let your success make the noise.", Author: "Frank Ocean"},
	{ID: "15", Text: "Believe you can and you are halfway there.", Author: "Theodore Roosevelt"},
	{ID: "16", Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{ID: "17", Text: "Energy and persistence conquer all things.", Author: "Benjamin Franklin"},
	{ID: "18", Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{ID: "19", Text: "Great things are done by a series of small things brought together.", Author: "Vincent van Gogh"},
	{ID: "20", Text: "You are never too old to set another goal or to dream a new dream.", Author: "C. S. Lewis"},
	{ID: "21", Text: "Hardships often prepare ordinary people for an extraordinary destiny.", Author: "C. S. Lewis"},
	{ID: "22", Text: "Stay patient and trust your journey.", Author: "Unknown"},
	{ID: "23", Text: "The only limit to our realization of tomorrow is our doubts of today.", Author: "Franklin D. Roosevelt"},
	{ID: "24", Text: "Done is better than perfect.", Author: "Sheryl Sandberg"},
	{ID: "25", Text: "Courage is one step ahead of fear.", Author: "Coleman Young"},
	{ID: "26", Text: "You do not have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{ID: "27", Text: "Progress, not perfection.", Author: "Unknown"},
	{ID: "28", Text: "Your direction is more important than your speed.", Author: "Unknown"},
	{ID: "29", Text: "Keep your face always toward the sunshine and shadows will fall behind you.", Author: "Walt Whitman"},
	{ID: "30", Text: "When you feel like quitting, remember why you started.", Author: "Unknown"},
	{ID: "31", Text: "Fall seven times, stand up eight.", Author: "Japanese Proverb"},
	{ID: "32", Text: "A little progress each day adds up to big results.", Author: "Satya Nani"},
	{ID: "33", Text: "Do something today that your future self will thank you for.", Author: "Sean Patrick Flanery"},
	{ID: "34", Text: "Push yourself, because no one else is going to do it for you.", Author: "Unknown"},
	{ID: "35", Text: "Consistency creates confidence.", Author: "Unknown"},
})
