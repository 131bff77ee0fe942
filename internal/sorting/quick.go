package sorting

// Quick is a recursive quicksort with a Lomuto partition around the last
// element of each range.
func Quick(nums []int, rec Recorder) {
	if len(nums) > 1 {
		quickSort(nums, 0, len(nums)-1, rec)
	}
	emit(rec, Noop(), nums)
}

func quickSort(nums []int, low, high int, rec Recorder) {
	if low >= high {
		return
	}
	p := partition(nums, low, high, rec)
	quickSort(nums, low, p-1, rec)
	quickSort(nums, p+1, high, rec)
}

func partition(nums []int, low, high int, rec Recorder) int {
	pivot := nums[high]
	i := low
	for j := low; j < high; j++ {
		emit(rec, Compare(j, high), nums)
		if nums[j] <= pivot {
			if i != j {
				nums[i], nums[j] = nums[j], nums[i]
				emit(rec, Swap(i, j), nums)
			}
			i++
		}
	}
	if i != high {
		nums[i], nums[high] = nums[high], nums[i]
		emit(rec, Swap(i, high), nums)
	}
	return i
}
